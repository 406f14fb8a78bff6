package cli

import (
	"context"
	"time"
)

// logHooks forwards pipeline and HTTP events to the logger in ctx.
// All events log at debug level so they only appear with --verbose.
type logHooks struct{}

func (logHooks) OnResolveStart(ctx context.Context, label, url string) {
	loggerFromContext(ctx).Debug("Resolving", "package", label, "url", url)
}

func (logHooks) OnFetchComplete(ctx context.Context, url string, size int, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("Fetch failed", "url", url, "duration", d.Round(time.Millisecond), "error", err)
		return
	}
	logger.Debug("Fetched manifest", "url", url, "bytes", size, "duration", d.Round(time.Millisecond))
}

func (logHooks) OnResolveComplete(ctx context.Context, label string, count int, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("Resolve failed", "package", label, "error", err)
		return
	}
	logger.Debug("Resolved", "package", label, "dependencies", count, "duration", d.Round(time.Millisecond))
}

func (logHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (logHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("HTTP response", "method", method, "host", host, "status", status, "duration", d.Round(time.Millisecond))
}

func (logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("HTTP error", "method", method, "host", host, "path", path, "error", err)
}
