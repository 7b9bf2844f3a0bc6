package permissions

import (
	"testing"

	"github.com/quietdesk/micgate/pkg/audioprobe"
)

func TestDetectEnvironmentGranted(t *testing.T) {
	oracle := &fakeOracle{status: StatusGranted}
	env := DetectEnvironment(oracle, &fakeProvider{})
	if !env.Available {
		t.Fatalf("expected available environment, got %+v", env)
	}
	if env.Provider != "fake" {
		t.Fatalf("expected provider name, got %q", env.Provider)
	}
	if env.Device == "" {
		t.Fatalf("expected default device name")
	}
	if env.Permission != string(StatusGranted) {
		t.Fatalf("expected granted permission, got %q", env.Permission)
	}
}

func TestDetectEnvironmentDenied(t *testing.T) {
	oracle := &fakeOracle{status: StatusDenied}
	env := DetectEnvironment(oracle, &fakeProvider{})
	if env.Available {
		t.Fatalf("denied permission must not report available")
	}
	if env.Guidance != DeniedMessage {
		t.Fatalf("expected remediation guidance, got %q", env.Guidance)
	}
}

func TestDetectEnvironmentNoDevice(t *testing.T) {
	oracle := &fakeOracle{status: StatusGranted}
	env := DetectEnvironment(oracle, &fakeProvider{deviceErr: audioprobe.ErrNoInputDevice})
	if env.Available {
		t.Fatalf("missing device must not report available")
	}
	if env.Message == "" {
		t.Fatalf("expected a message explaining the missing device")
	}
	if env.Guidance == DeniedMessage {
		t.Fatalf("missing device must not carry permission guidance")
	}
}

func TestDetectEnvironmentUnknownMentionsPrompt(t *testing.T) {
	oracle := &fakeOracle{status: StatusUnknown}
	env := DetectEnvironment(oracle, &fakeProvider{})
	if !env.Available {
		t.Fatalf("undecided permission should still report available, got %+v", env)
	}
	if env.Message == "" {
		t.Fatalf("expected a message about the pending prompt")
	}
}
