package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/quietdesk/micgate/pkg/permissions"
)

func newEnsureCommand() command {
	return command{
		name:        "ensure",
		description: "Run the recording-start gate and fail when capture cannot proceed",
		configure: func(fs *flag.FlagSet) {
			fs.Bool("open-settings", false, "Open the system privacy pane when the permission is denied")
		},
		run: runEnsure,
	}
}

// openSystemSettings is extracted for testability.
var openSystemSettings = permissions.OpenSystemSettings

func runEnsure(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	gate, err := buildGate(ctx)
	if err != nil {
		return err
	}

	outcome := gate.EnsureGranted(context.Background())
	if outcome.OK {
		fmt.Fprintln(stdout, "Microphone capture may proceed.")
		return nil
	}

	fmt.Fprintln(stderr, outcome.Message)
	if boolFlag(fs, "open-settings") && outcome.Reason == permissions.FailureDenied {
		if err := openSystemSettings(); err != nil {
			ctx.Logger.Warn("open system settings", "error", err)
		}
	}
	return errors.New("microphone gate blocked recording")
}

func boolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	value, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		return false
	}
	return value
}
