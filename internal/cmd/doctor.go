package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/quietdesk/micgate/pkg/audioprobe"
	"github.com/quietdesk/micgate/pkg/permissions"
)

func newDoctorCommand() command {
	return command{
		name:        "doctor",
		description: "Diagnose the audio backend and permission environment",
		run:         runDoctor,
	}
}

func runDoctor(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	env := permissions.DetectEnvironment(buildOracle(ctx), audioprobe.DefaultProvider())

	fmt.Fprintln(stdout, "Microphone gate environment:")
	fmt.Fprintf(stdout, "  provider: %s\n", env.Provider)
	fmt.Fprintf(stdout, "  available: %t\n", env.Available)
	fmt.Fprintf(stdout, "  permission: %s\n", env.Permission)
	if env.Device != "" {
		fmt.Fprintf(stdout, "  device: %s\n", env.Device)
	}
	if env.Message != "" {
		fmt.Fprintf(stdout, "  message: %s\n", env.Message)
	}
	if env.Guidance != "" {
		fmt.Fprintf(stdout, "  guidance: %s\n", env.Guidance)
	}
	return nil
}
