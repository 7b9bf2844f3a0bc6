package cmd

import (
	"os"

	"github.com/quietdesk/micgate/pkg/logging"
	"github.com/quietdesk/micgate/pkg/notify"
	"github.com/quietdesk/micgate/pkg/permissions"
)

// oracleOptions translates the application context into oracle options.
// A config-level permission override acts as a fallback behind the real
// environment variable so ad-hoc env overrides still win.
func oracleOptions(ctx *AppContext) permissions.Options {
	opts := permissions.Options{
		Logger: logging.Component(ctx.Logger, "oracle"),
		Dwell:  ctx.Config.ProbeDwell(),
	}
	if override := ctx.Config.Gate.PermissionOverride; override != "" {
		opts.Lookup = func(key string) (string, bool) {
			if value, ok := os.LookupEnv(key); ok {
				return value, ok
			}
			return override, true
		}
	}
	return opts
}

func buildOracle(ctx *AppContext) permissions.Oracle {
	return permissions.NewOracle(oracleOptions(ctx))
}

func buildGate(ctx *AppContext) (*permissions.Gate, error) {
	var notifier func(title, body string) error
	if ctx.Config.Gate.NotifyOnDenied {
		notifier = notify.Alert
	}
	return permissions.NewGate(permissions.GateOptions{
		Oracle:      buildOracle(ctx),
		Logger:      logging.Component(ctx.Logger, "gate"),
		WarmupDelay: ctx.Config.WarmupDelay(),
		Notify:      notifier,
	})
}
