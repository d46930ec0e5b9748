package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// Process errors.
var (
	// ErrNotStarted is returned when operations require a started process.
	ErrNotStarted = errors.New("process not started")

	// ErrAlreadyStarted is returned when starting an already started process.
	ErrAlreadyStarted = errors.New("process already started")
)

// State represents the state of a child process.
type State int

const (
	// StateCreated indicates the process has been created but not started.
	StateCreated State = iota
	// StateRunning indicates the process is currently running.
	StateRunning
	// StateExited indicates the process has exited normally or with an error.
	StateExited
	// StateKilled indicates the process was killed by a signal.
	StateKilled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateKilled:
		return "killed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Process wraps an exec.Cmd with lifecycle tracking.
type Process struct {
	// Name is a human-readable name for the process.
	Name string

	// Cmd is the underlying exec.Cmd.
	Cmd *exec.Cmd

	// Started is the time the process was started.
	Started time.Time

	// done is closed when the process exits.
	done chan struct{}

	// state tracks the current process state.
	state atomic.Int32

	// exitCode stores the exit code after the process exits.
	exitCode atomic.Int32

	// exitErr stores any error from Wait().
	exitErr error

	// mu protects exitErr.
	mu sync.RWMutex
}

// Start starts cmd and returns a Process tracking it.
// The command must not already be started.
func Start(name string, cmd *exec.Cmd) (*Process, error) {
	p := &Process{
		Name: name,
		Cmd:  cmd,
		done: make(chan struct{}),
	}
	p.state.Store(int32(StateCreated))
	p.exitCode.Store(-1) // -1 indicates not exited

	if cmd.Process != nil {
		return nil, ErrAlreadyStarted
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	p.Started = time.Now()
	p.state.Store(int32(StateRunning))

	go p.waitLoop()

	return p, nil
}

// State returns the current process state.
func (p *Process) State() State {
	return State(p.state.Load())
}

// ExitCode returns the process exit code.
// Returns -1 if the process has not exited.
func (p *Process) ExitCode() int {
	return int(p.exitCode.Load())
}

// ExitError returns any error from waiting on the process.
// Returns nil if the process exited successfully or hasn't exited.
func (p *Process) ExitError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitErr
}

// Done returns a channel that is closed when the process exits.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// IsRunning returns true if the process is currently running.
func (p *Process) IsRunning() bool {
	return p.State() == StateRunning
}

// PID returns the process ID, or -1 if not started.
func (p *Process) PID() int {
	if p.Cmd.Process == nil {
		return -1
	}
	return p.Cmd.Process.Pid
}

// Signal sends a signal to the process.
// Returns an error if the process is not running.
func (p *Process) Signal(sig os.Signal) error {
	if !p.IsRunning() || p.Cmd.Process == nil {
		return fmt.Errorf("signal %s: %w", p.Name, ErrNotStarted)
	}
	return p.Cmd.Process.Signal(sig)
}

// Kill sends SIGKILL to the process.
func (p *Process) Kill() error {
	return p.Signal(syscall.SIGKILL)
}

// Runtime returns the duration the process has been running.
func (p *Process) Runtime() time.Duration {
	if p.Started.IsZero() {
		return 0
	}
	return time.Since(p.Started)
}

// waitLoop waits for the process to exit and updates state.
func (p *Process) waitLoop() {
	err := p.Cmd.Wait()

	p.mu.Lock()
	p.exitErr = err
	p.mu.Unlock()

	exitCode := 0
	state := StateExited

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
				state = StateKilled
			}
		} else {
			exitCode = -1
		}
	}

	p.exitCode.Store(int32(exitCode))
	p.state.Store(int32(state))
	close(p.done)
}
