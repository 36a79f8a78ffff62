package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubRunner records subprocess invocations instead of executing them.
type stubRunner struct {
	runCalls   [][]string
	quietCalls [][]string
	runErr     error
	quietErr   error
}

func (s *stubRunner) Run(name string, args ...string) error {
	s.runCalls = append(s.runCalls, append([]string{name}, args...))
	return s.runErr
}

func (s *stubRunner) RunQuiet(name string, args ...string) error {
	s.quietCalls = append(s.quietCalls, append([]string{name}, args...))
	return s.quietErr
}

// runnerFactory wires a stub into run's injection point.
func runnerFactory(r commandRunner) func(Config) commandRunner {
	return func(Config) commandRunner { return r }
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
