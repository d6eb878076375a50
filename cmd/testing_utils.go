// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments
// and capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/cloudsafe/internal/configs"
	logger "github.com/PolarWolf314/cloudsafe/internal/logging"
)

// setupTestEnvironment points the user settings at temporary directories
// and resets command state. It returns the downloads directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	tempUserDir := t.TempDir()
	downloads := filepath.Join(tempUserDir, "downloads")
	if err := os.MkdirAll(downloads, 0755); err != nil {
		t.Fatalf("Failed to create downloads directory: %v", err)
	}

	originalUserSettings := configs.UserCloudSafeSettings
	configs.UserCloudSafeSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		DownloadsPath:   downloads,
	}
	ResetGlobalState()

	t.Cleanup(func() {
		configs.UserCloudSafeSettings = originalUserSettings
		ResetGlobalState()
	})
	return downloads
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

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

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCLI executes the root command with args and returns everything printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	Logger = logger.Logger{}
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}
