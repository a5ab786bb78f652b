// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and executing commands against a temporary store.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"
)

// setupTestEnvironment moves the test into a temporary working directory and
// resets command state. The original directory is restored on cleanup.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	tempDir, err := os.MkdirTemp("", "manuka-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	ResetGlobalState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		os.RemoveAll(tempDir)
		ResetGlobalState()
	})

	return tempDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// executeInit runs the init command with the given arguments and returns the
// combined output and returned error.
func executeInit(args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	return captureOutput(func() error {
		InitCmd.SetArgs(args)
		return InitCmd.Execute()
	})
}

// executeList runs the list command and returns the combined output and
// returned error.
func executeList(args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	return captureOutput(func() error {
		ListCmd.SetArgs(args)
		return ListCmd.Execute()
	})
}

// withStdin replaces os.Stdin with a pipe carrying input for the duration of fn.
func withStdin(t *testing.T, input string, fn func()) {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdin pipe: %v", err)
	}

	originalStdin := os.Stdin
	os.Stdin = reader
	defer func() {
		os.Stdin = originalStdin
		reader.Close()
	}()

	go func() {
		defer writer.Close()
		_, _ = writer.WriteString(input)
	}()

	fn()
}
