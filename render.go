package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// commandRunner is the subprocess boundary. Tests swap in a stub to check
// exactly what would be executed.
type commandRunner interface {
	// Run executes the command with stdout/stderr passed straight through.
	Run(name string, args ...string) error
	// RunQuiet executes the command and folds its stderr into the returned
	// error instead of streaming it.
	RunQuiet(name string, args ...string) error
}

type execRunner struct {
	env    []string // nil inherits the parent environment
	binDir string   // virtualenv bin directory, empty when there is none
}

// newExecRunner builds the real subprocess runner. When the project has a
// virtualenv, bare binary names resolve to its bin directory first and the
// child's PATH gets the same directory prepended.
func newExecRunner(cfg Config) commandRunner {
	bin := venvBin(cfg.Venv)
	return execRunner{env: venvEnv(bin), binDir: bin}
}

func (r execRunner) Run(name string, args ...string) error {
	cmd := exec.Command(r.resolve(name), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = r.env
	return cmd.Run()
}

func (r execRunner) RunQuiet(name string, args ...string) error {
	var errBuffer bytes.Buffer
	cmd := exec.Command(r.resolve(name), args...)
	cmd.Stderr = &errBuffer
	cmd.Env = r.env
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w\n%s", name, err, strings.TrimSpace(errBuffer.String()))
	}
	return nil
}

// resolve points a bare binary name at the virtualenv copy when one exists.
// exec.Command looks bare names up on the wrapper's own PATH, which the
// virtualenv is not on, so a renderer installed only inside the virtualenv
// needs its explicit path.
func (r execRunner) resolve(name string) string {
	if r.binDir == "" || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	candidate := filepath.Join(r.binDir, name)
	if _, err := exec.LookPath(candidate); err != nil {
		return name
	}
	log.Debugf("using %s from the virtualenv", candidate)
	return candidate
}

// venvBin returns the virtualenv's bin directory, or "" when the project has
// no virtualenv.
func venvBin(venvDir string) string {
	bin := filepath.Join(venvDir, "bin")
	info, err := os.Stat(bin)
	if err != nil || !info.IsDir() {
		return ""
	}
	return bin
}

// venvEnv returns the process environment with the given bin directory
// prepended to PATH, so anything the renderer spawns in turn also prefers the
// virtualenv. Returns nil (inherit as-is) when there is no virtualenv.
func venvEnv(bin string) []string {
	if bin == "" {
		return nil
	}
	log.Debugf("virtualenv found, prepending %s to PATH", bin)
	env := os.Environ()
	for i, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			env[i] = "PATH=" + bin + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
			return env
		}
	}
	return append(env, "PATH="+bin)
}

// renderArgs builds the Manim argv: quality flag first, script and scene last.
func renderArgs(cfg Config, preset QualityPreset, scene string, preview bool) []string {
	args := []string{preset.Flag}
	if preview {
		args = append(args, "-p")
	}
	args = append(args, cfg.ExtraArgs...)
	return append(args, cfg.Script, scene)
}

// renderError marks a failure of the renderer subprocess itself. The renderer
// already wrote its diagnostics to the inherited stderr, so main exits with
// the subprocess status without adding any of its own.
type renderError struct {
	err error
}

func (e renderError) Error() string { return "renderer: " + e.err.Error() }
func (e renderError) Unwrap() error { return e.err }

// exitCode maps run's error to the wrapper's exit status: the renderer's own
// code when the renderer failed, 1 for everything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var rerr renderError
	if errors.As(err, &rerr) {
		var exitErr *exec.ExitError
		if errors.As(rerr.err, &exitErr) {
			return exitErr.ExitCode()
		}
	}
	return 1
}
