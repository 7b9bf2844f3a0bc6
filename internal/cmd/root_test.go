package cmd

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/quietdesk/micgate/pkg/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext() *AppContext {
	return &AppContext{Config: config.Default(), Logger: newTestLogger()}
}

func TestExecuteNoArgsPrintsHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := NewRootCommand()
	rc.stdout = &stdout
	rc.stderr = &stderr

	if err := rc.Execute(nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Available commands:") {
		t.Fatalf("expected help output, got %q", stdout.String())
	}
	for _, name := range []string{"status", "probe", "ensure", "doctor", "version"} {
		if !strings.Contains(stdout.String(), name) {
			t.Fatalf("help output missing command %q: %q", name, stdout.String())
		}
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := NewRootCommand()
	rc.stdout = &stdout
	rc.stderr = &stderr

	if err := rc.Execute([]string{"bogus"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(stderr.String(), `Unknown command "bogus"`) {
		t.Fatalf("expected unknown-command message, got %q", stderr.String())
	}
}

func TestVersionCommandSkipsConfigLoad(t *testing.T) {
	origVersion := runtimeVersion
	runtimeVersion = func() string { return "1.23.0" }
	defer func() { runtimeVersion = origVersion }()

	origGOOS := runtimeGOOS
	runtimeGOOS = func() string { return "darwin" }
	defer func() { runtimeGOOS = origGOOS }()

	var stdout, stderr bytes.Buffer
	rc := NewRootCommand()
	rc.stdout = &stdout
	rc.stderr = &stderr

	// A missing config file must not matter for version.
	if err := rc.Execute([]string{"--config", "/nonexistent/config.yaml", "version"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "(go1.23.0/darwin)") {
		t.Fatalf("expected runtime suffix in version output, got %q", stdout.String())
	}
}

func TestStatusCommandHonoursEnvOverride(t *testing.T) {
	t.Setenv("MICGATE_MIC_PERMISSION", "denied")

	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runStatus(fs, nil, newTestContext(), &stdout, io.Discard); err != nil {
		t.Fatalf("runStatus returned error: %v", err)
	}
	if got := stdout.String(); got != "Microphone permission: denied\n" {
		t.Fatalf("unexpected status output: %q", got)
	}
}

func TestStatusCommandHonoursConfigOverride(t *testing.T) {
	ctx := newTestContext()
	ctx.Config.Gate.PermissionOverride = "granted"

	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runStatus(fs, nil, ctx, &stdout, io.Discard); err != nil {
		t.Fatalf("runStatus returned error: %v", err)
	}
	if got := stdout.String(); got != "Microphone permission: granted\n" {
		t.Fatalf("unexpected status output: %q", got)
	}
}

func TestStatusCommandEnvWinsOverConfig(t *testing.T) {
	t.Setenv("MICGATE_MIC_PERMISSION", "denied")

	ctx := newTestContext()
	ctx.Config.Gate.PermissionOverride = "granted"

	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runStatus(fs, nil, ctx, &stdout, io.Discard); err != nil {
		t.Fatalf("runStatus returned error: %v", err)
	}
	if got := stdout.String(); got != "Microphone permission: denied\n" {
		t.Fatalf("unexpected status output: %q", got)
	}
}
