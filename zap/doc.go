// Package zap provides the production implementation of log.Logger backed by
// go.uber.org/zap.
//
// Loggers are built from a Config describing the deployment environment and
// desired verbosity. Output is JSON, teed into the OpenTelemetry log bridge so
// records correlate with traces, and the returned zap.AtomicLevel allows the
// verbosity to be adjusted at runtime.
package zap
