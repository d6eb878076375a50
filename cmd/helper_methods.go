package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/cloudsafe/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if spinnerEnabled() {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if spinnerEnabled() {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if spinnerEnabled() {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// spinnerEnabled reports whether spinners draw, which they don't while
// log lines are being printed.
func spinnerEnabled() bool {
	return !verbose && !debug
}

// setSpinnerMessage swaps the suffix of a running spinner, or logs the
// message when spinners are off.
func setSpinnerMessage(s *spinner.Spinner, message string) {
	if !spinnerEnabled() {
		Logger.Infof("%s", message)
		return
	}
	s.Lock()
	s.Suffix = " " + message
	s.Unlock()
}

// printAboveSpinner prints a line without it being overwritten by the spinner.
func printAboveSpinner(s *spinner.Spinner, line string) {
	if !spinnerEnabled() || !s.Active() {
		fmt.Println(line)
		return
	}
	s.Stop()
	fmt.Println(line)
	s.Start()
}
