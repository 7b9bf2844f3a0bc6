package cmd

import (
	"flag"
	"fmt"
	"io"
)

func newStatusCommand() command {
	return command{
		name:        "status",
		description: "Report the current microphone authorization status",
		run:         runStatus,
	}
}

func runStatus(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	status := buildOracle(ctx).CheckStatus()
	fmt.Fprintf(stdout, "Microphone permission: %s\n", status)
	return nil
}
