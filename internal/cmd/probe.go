package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func newProbeCommand() command {
	return command{
		name:        "probe",
		description: "Open a short-lived capture stream to surface the OS consent dialog",
		run:         runProbe,
	}
}

func runProbe(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	oracle := buildOracle(ctx)
	result := oracle.Probe(context.Background())
	if result.OK {
		fmt.Fprintf(stdout, "Probe succeeded (device: %s)\n", result.Device)
		fmt.Fprintf(stdout, "Microphone permission: %s\n", oracle.CheckStatus())
		return nil
	}

	fmt.Fprintf(stdout, "Probe failed (%s)\n", result.Reason)
	if result.Err != nil {
		fmt.Fprintf(stdout, "  cause: %v\n", result.Err)
	}
	fmt.Fprintf(stdout, "Microphone permission: %s\n", oracle.CheckStatus())
	return nil
}
