//go:build !darwin

package cmd

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/quietdesk/micgate/pkg/audioprobe"
	"github.com/quietdesk/micgate/pkg/permissions"
)

func TestEnsureCommandProceedsWhenGranted(t *testing.T) {
	fs := flag.NewFlagSet("ensure", flag.ContinueOnError)
	fs.Bool("open-settings", false, "")

	var stdout bytes.Buffer
	if err := runEnsure(fs, nil, newTestContext(), &stdout, io.Discard); err != nil {
		t.Fatalf("runEnsure returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Microphone capture may proceed.") {
		t.Fatalf("expected proceed message, got %q", stdout.String())
	}
}

func TestEnsureCommandDeniedOpensSettings(t *testing.T) {
	t.Setenv(permissions.OverrideEnv, "denied")
	t.Setenv(audioprobe.ResultEnv, "error")

	opened := false
	origOpen := openSystemSettings
	openSystemSettings = func() error {
		opened = true
		return nil
	}
	defer func() { openSystemSettings = origOpen }()

	ensure := newEnsureCommand()
	fs := flag.NewFlagSet(ensure.name, flag.ContinueOnError)
	ensure.configure(fs)
	if err := fs.Parse([]string{"-open-settings"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err := runEnsure(fs, nil, newTestContext(), &stdout, &stderr)
	if err == nil {
		t.Fatal("expected gate failure error")
	}
	if !strings.Contains(stderr.String(), permissions.DeniedMessage) {
		t.Fatalf("expected denial remediation on stderr, got %q", stderr.String())
	}
	if !opened {
		t.Fatal("expected system settings shortcut to be invoked")
	}
}

func TestEnsureCommandDeniedWithoutFlagLeavesSettingsClosed(t *testing.T) {
	t.Setenv(permissions.OverrideEnv, "denied")
	t.Setenv(audioprobe.ResultEnv, "error")

	origOpen := openSystemSettings
	openSystemSettings = func() error {
		t.Fatal("system settings shortcut must not run without the flag")
		return nil
	}
	defer func() { openSystemSettings = origOpen }()

	ensure := newEnsureCommand()
	fs := flag.NewFlagSet(ensure.name, flag.ContinueOnError)
	ensure.configure(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if err := runEnsure(fs, nil, newTestContext(), &stdout, &stderr); err == nil {
		t.Fatal("expected gate failure error")
	}
}

func TestProbeCommandReportsSuccess(t *testing.T) {
	ctx := newTestContext()
	ctx.Config.Gate.ProbeDwellMillis = 1

	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runProbe(fs, nil, ctx, &stdout, io.Discard); err != nil {
		t.Fatalf("runProbe returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Probe succeeded (device: Synthetic Microphone)") {
		t.Fatalf("expected probe success output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Microphone permission: granted") {
		t.Fatalf("expected granted status after probe, got %q", stdout.String())
	}
}

func TestProbeCommandReportsDeviceAbsent(t *testing.T) {
	t.Setenv(audioprobe.ResultEnv, "absent")

	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runProbe(fs, nil, newTestContext(), &stdout, io.Discard); err != nil {
		t.Fatalf("runProbe returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Probe failed (device_absent)") {
		t.Fatalf("expected absent failure output, got %q", stdout.String())
	}
}

func TestDoctorCommandReportsEnvironment(t *testing.T) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runDoctor(fs, nil, newTestContext(), &stdout, io.Discard); err != nil {
		t.Fatalf("runDoctor returned error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"provider: synthetic",
		"available: true",
		"permission: granted",
		"device: Synthetic Microphone",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("doctor output missing %q: %q", want, out)
		}
	}
}

func TestDoctorCommandReportsDeniedGuidance(t *testing.T) {
	t.Setenv(permissions.OverrideEnv, "denied")

	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	var stdout bytes.Buffer
	if err := runDoctor(fs, nil, newTestContext(), &stdout, io.Discard); err != nil {
		t.Fatalf("runDoctor returned error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "available: false") {
		t.Fatalf("expected unavailable environment, got %q", out)
	}
	if !strings.Contains(out, permissions.DeniedMessage) {
		t.Fatalf("expected denial guidance, got %q", out)
	}
}
