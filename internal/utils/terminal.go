package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}

// ReadPassword prompts on stderr and reads a line from the terminal without
// echoing it. Returns an error if stdin is not a terminal.
func ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot read password: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTerminal returns true if stdout is a terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal screen using ANSI escape sequences.
// Writes directly to the TTY so it works even when stdout is redirected.
func ClearScreen() error {
	tty, err := os.OpenFile(ttyPath(), os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("cannot open %s for writing: %w", ttyPath(), err)
	}
	defer tty.Close()

	// Clear screen and move cursor to top-left.
	if _, err := tty.WriteString("\033[2J\033[H"); err != nil {
		return fmt.Errorf("failed to write to TTY: %w", err)
	}
	return nil
}

// WaitForEnter blocks until a newline is read from r or r is exhausted.
func WaitForEnter(r io.Reader) error {
	_, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}

// WaitForEnterFromTTY waits for the user to press Enter on the TTY.
func WaitForEnterFromTTY() error {
	tty, err := os.Open(ttyPath())
	if err != nil {
		return fmt.Errorf("cannot open %s for input: %w", ttyPath(), err)
	}
	defer tty.Close()
	return WaitForEnter(tty)
}
