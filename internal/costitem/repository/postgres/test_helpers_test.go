package postgres_test

import "context"

// noopLogger satisfies log.Logger for tests.
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
