package logging

import (
	"context"
	"fmt"
	"loglib/internal/logctx"
	"loglib/pkg/level"
)

// Attaches the application name used by LogContext
func WithApplication(ctx context.Context, name string) context.Context {
	return logctx.WithApplication(ctx, name)
}

// Application name carried by ctx, if any
func ApplicationFromContext(ctx context.Context) (name string, present bool) {
	name, present = logctx.GetApplication(ctx)
	return
}

// Adds a component tag that prefixes messages logged through ctx
func WithTag(ctx context.Context, tag string) context.Context {
	return logctx.AppendCtxTag(ctx, tag)
}

// Logs under the application carried by ctx, prefixing context tags to the message
func (log *Log) LogContext(ctx context.Context, lvl level.Level, message string, cause error) (err error) {
	name, present := logctx.GetApplication(ctx)
	if !present {
		err = fmt.Errorf("%w: no application in context", ErrInvalidArgument)
		return
	}
	if message == "" {
		err = fmt.Errorf("%w: empty message", ErrInvalidArgument)
		return
	}

	err = log.Log(name, lvl, logctx.TagMessage(ctx, message), cause)
	return
}
