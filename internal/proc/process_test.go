package proc

import (
	"errors"
	"os/exec"
	"syscall"
	"testing"
	"time"
)

func TestStart(t *testing.T) {
	cmd := exec.Command("echo", "hello")
	p, err := Start("echo", cmd)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if p.PID() <= 0 {
		t.Errorf("expected positive PID, got %d", p.PID())
	}
	if p.Started.IsZero() {
		t.Error("expected Started time to be set")
	}

	<-p.Done()

	if p.State() != StateExited {
		t.Errorf("expected state StateExited, got %v", p.State())
	}
	if p.ExitCode() != 0 {
		t.Errorf("expected exit code 0, got %d", p.ExitCode())
	}
	if p.ExitError() != nil {
		t.Errorf("expected nil exit error, got %v", p.ExitError())
	}
}

func TestStart_NonZeroExit(t *testing.T) {
	cmd := exec.Command("sh", "-c", "exit 3")
	p, err := Start("fail", cmd)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	<-p.Done()

	if p.ExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", p.ExitCode())
	}
	if p.State() != StateExited {
		t.Errorf("expected state StateExited, got %v", p.State())
	}
	if p.ExitError() == nil {
		t.Error("expected exit error for non-zero exit")
	}
}

func TestStart_MissingBinary(t *testing.T) {
	cmd := exec.Command("definitely-not-a-real-binary-xyz")
	if _, err := Start("missing", cmd); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestStart_AlreadyStarted(t *testing.T) {
	cmd := exec.Command("echo", "hello")
	if err := cmd.Start(); err != nil {
		t.Fatalf("prestart failed: %v", err)
	}
	defer cmd.Wait()

	if _, err := Start("echo", cmd); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Start() = %v, expected ErrAlreadyStarted", err)
	}
}

func TestProcess_Kill(t *testing.T) {
	cmd := exec.Command("sleep", "10")
	p, err := Start("sleep", cmd)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if !p.IsRunning() {
		t.Fatal("expected process to be running")
	}

	if err := p.Kill(); err != nil {
		t.Fatalf("Kill() failed: %v", err)
	}

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for killed process")
	}

	if p.State() != StateKilled {
		t.Errorf("expected state StateKilled, got %v", p.State())
	}
}

func TestProcess_SignalNotRunning(t *testing.T) {
	cmd := exec.Command("echo", "hello")
	p, err := Start("echo", cmd)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	<-p.Done()

	if err := p.Signal(syscall.SIGTERM); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Signal() = %v, expected ErrNotStarted", err)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateCreated, "created"},
		{StateRunning, "running"},
		{StateExited, "exited"},
		{StateKilled, "killed"},
		{State(42), "unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.expected)
		}
	}
}
