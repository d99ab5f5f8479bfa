// Package runtime holds process-wide execution mode state and panic recovery
// helpers shared by the assertion and verification packages.
package runtime

import "sync"

var (
	// productionMode controls whether sensitive data is included in failure
	// reports. When true, stack traces and detailed panic values are
	// suppressed and debug-only verifications become no-ops.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode.
// In production mode, stack traces and potentially sensitive failure details
// are redacted, and check.Check verifications are skipped.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}
