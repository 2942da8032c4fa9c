package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"
)

// ErrTimedOut is returned when the child process exceeds the allotted time
// and its process group is killed.
var ErrTimedOut = errors.New("process timed out")

type Runner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	cmd     *exec.Cmd
	timeout time.Duration
	sigs    chan os.Signal
	logger  io.Writer
}

// New wraps cmd so that signals and timeout expiry terminate the whole
// process group rather than the shell alone. A zero timeout means wait
// forever.
func New(cmd *exec.Cmd, logger io.Writer, timeout time.Duration) *Runner {
	// Ensure that child is started in process group
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	r := &Runner{
		cmd:     cmd,
		timeout: timeout,
		sigs:    make(chan os.Signal, 1),
		logger:  logger,
	}
	r.startSignalHandler()

	return r
}

func (r *Runner) Run() error {
	r.cmd.Stdout = r.Stdout
	r.cmd.Stderr = r.Stderr
	err := r.startAndWait()

	r.stopSignalHandler()
	return err
}

func (r *Runner) CombinedOutput() ([]byte, error) {
	var combined bytes.Buffer
	r.cmd.Stdout = &combined
	r.cmd.Stderr = &combined
	err := r.startAndWait()

	r.stopSignalHandler()
	return combined.Bytes(), err
}

func (r *Runner) Output() ([]byte, error) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	r.cmd.Stdout = &stdout
	r.cmd.Stderr = &stderr
	err := r.startAndWait()

	r.stopSignalHandler()
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitErr.Stderr = stderr.Bytes()
	}
	return stdout.Bytes(), err
}

func (r *Runner) startAndWait() error {
	if err := r.cmd.Start(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- r.cmd.Wait()
	}()

	if r.timeout <= 0 {
		return <-done
	}

	select {
	case err := <-done:
		return err
	case <-time.After(r.timeout):
		r.killProcessGroup()
		<-done
		return ErrTimedOut
	}
}

func (r *Runner) killProcessGroup() {
	if r.cmd.Process == nil {
		fmt.Fprintln(r.logger, "** Process already terminated.")
		return
	}

	processGroup := -r.cmd.Process.Pid
	if err := syscall.Kill(processGroup, syscall.SIGKILL); err != nil {
		fmt.Fprintf(r.logger, "** Error signaling process group %d: %s\n", processGroup, err)
	}
}

func (r *Runner) terminate() {
	r.killProcessGroup()

	fmt.Fprintln(r.logger, "** Exiting due to signal")
	os.Exit(1)
}

func (r *Runner) startSignalHandler() {
	signal.Notify(r.sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for s := range r.sigs {
			fmt.Fprintf(r.logger, "** Received signal: %s\n", s)
			r.terminate()
		}
	}()
}

func (r *Runner) stopSignalHandler() {
	signal.Reset(syscall.SIGINT, syscall.SIGTERM)
	close(r.sigs)
}
