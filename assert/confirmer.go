package assert

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

// Confirmer accumulates assertion failures instead of stopping at the first
// one. It wraps an Asserter and records every failed check; call Err to get
// the combined error once all checks have run.
//
// Use it for validation passes where reporting every violation at once is
// more useful than failing fast:
//
//	confirmer := assert.NewConfirmer(asserter)
//	confirmer.That(ctx, cfg.Name != "", "name must be set")
//	confirmer.That(ctx, cfg.Limit > 0, "limit must be positive", "limit", cfg.Limit)
//	if err := confirmer.Err(); err != nil {
//		return err
//	}
//
// A Confirmer is not safe for concurrent use.
type Confirmer struct {
	asserter *Asserter
	failures *multierror.Error
}

// NewConfirmer creates a Confirmer on top of an existing Asserter.
func NewConfirmer(asserter *Asserter) *Confirmer {
	return &Confirmer{asserter: asserter}
}

// That records a failure if ok is false. Returns true when the check passed.
func (confirmer *Confirmer) That(ctx context.Context, ok bool, msg string, kv ...any) bool {
	return confirmer.record(confirmer.asserter.That(ctx, ok, msg, kv...))
}

// NotNil records a failure if v is nil. Returns true when the check passed.
func (confirmer *Confirmer) NotNil(ctx context.Context, v any, msg string, kv ...any) bool {
	return confirmer.record(confirmer.asserter.NotNil(ctx, v, msg, kv...))
}

// NotEmpty records a failure if s is empty. Returns true when the check passed.
func (confirmer *Confirmer) NotEmpty(ctx context.Context, s, msg string, kv ...any) bool {
	return confirmer.record(confirmer.asserter.NotEmpty(ctx, s, msg, kv...))
}

// NoError records a failure if err is not nil. Returns true when the check passed.
func (confirmer *Confirmer) NoError(ctx context.Context, err error, msg string, kv ...any) bool {
	return confirmer.record(confirmer.asserter.NoError(ctx, err, msg, kv...))
}

// Failed reports whether any check recorded so far has failed.
func (confirmer *Confirmer) Failed() bool {
	return confirmer.failures.ErrorOrNil() != nil
}

// Count returns the number of failures recorded so far.
func (confirmer *Confirmer) Count() int {
	if confirmer.failures == nil {
		return 0
	}

	return len(confirmer.failures.Errors)
}

// Err returns the combined error for all recorded failures, or nil if every
// check passed. The result unwraps to each individual *AssertionError.
func (confirmer *Confirmer) Err() error {
	return confirmer.failures.ErrorOrNil()
}

func (confirmer *Confirmer) record(err error) bool {
	if err == nil {
		return true
	}

	confirmer.failures = multierror.Append(confirmer.failures, err)

	return false
}
