package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xolan/fuel/internal/service"
)

func TestDefaultDeps(t *testing.T) {
	d := DefaultDeps()
	if d.Stdout == nil || d.Stderr == nil || d.Stdin == nil {
		t.Error("expected non-nil standard streams")
	}
	if d.Exit == nil {
		t.Error("expected non-nil Exit")
	}
	if d.Services != nil {
		t.Error("expected services to be created lazily")
	}
	if d.Now == nil || d.Connect == nil {
		t.Error("expected Now and Connect to be set")
	}
}

func TestNewDeps(t *testing.T) {
	services := &service.Services{}
	d := NewDeps(services)
	if d.Services != services {
		t.Error("expected services to match")
	}
	if err := d.Init(true); err != nil {
		t.Errorf("Init() with services set returned error: %v", err)
	}
	if d.Services != services {
		t.Error("expected Init to keep injected services")
	}
}

func TestSetDeps(t *testing.T) {
	original := GetDeps()
	defer SetDeps(original)

	newDeps := DefaultDeps()
	SetDeps(newDeps)
	if GetDeps() != newDeps {
		t.Error("expected deps to be set")
	}
}

func TestResetDeps(t *testing.T) {
	original := GetDeps()
	defer SetDeps(original)

	custom := DefaultDeps()
	SetDeps(custom)
	ResetDeps()
	if GetDeps() == custom {
		t.Error("expected deps to be reset")
	}
}

func TestFail(t *testing.T) {
	stderr := &bytes.Buffer{}
	exitCode := 0
	d := &Deps{Stderr: stderr, Exit: func(code int) { exitCode = code }}

	d.Fail("Failed to load vehicles", errors.New("disk on fire"), "Check the file")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	out := stderr.String()
	for _, want := range []string{"Error: Failed to load vehicles", "Details: disk on fire", "Hint: Check the file"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestFail_NoDetails(t *testing.T) {
	stderr := &bytes.Buffer{}
	d := &Deps{Stderr: stderr, Exit: func(int) {}}

	d.Fail("No vehicle selected", nil, "")

	if strings.Contains(stderr.String(), "Details:") || strings.Contains(stderr.String(), "Hint:") {
		t.Errorf("expected only the error line, got: %s", stderr.String())
	}
}
