// Package logging provides component loggers and context-carried log fields.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// componentKey tags every entry from a component logger.
const componentKey = "cmp"

// Component returns a child of the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return log.With().Str(componentKey, name).Logger()
}

// ComponentCtx is Component bound to ctx, so ContextHook stamps the running
// command on entries that never call Ctx themselves.
func ComponentCtx(ctx context.Context, name string) zerolog.Logger {
	return log.With().Str(componentKey, name).Ctx(ctx).Logger()
}
