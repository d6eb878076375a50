package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/cloudsafe/internal/content"
	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"
	"github.com/PolarWolf314/cloudsafe/internal/simulation"
	"github.com/PolarWolf314/cloudsafe/internal/ui"
	"github.com/PolarWolf314/cloudsafe/internal/utils"
	"github.com/PolarWolf314/cloudsafe/internal/workflows"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	simulateOutDir       string
	simulateNoDelay      bool
	simulateStopAtStored bool
	simulateTranscript   string
)

func init() {
	simulateCmd.Flags().StringVarP(&simulateOutDir, "out", "o", "", "directory the restored file is saved to")
	simulateCmd.Flags().BoolVar(&simulateNoDelay, "no-delay", false, "skip the narrative pauses between phases")
	simulateCmd.Flags().BoolVar(&simulateStopAtStored, "stop-at-stored", false, "stop once the file is stored, without restoring it")
	simulateCmd.Flags().StringVar(&simulateTranscript, "transcript", "", "append every phase transition to this JSONL file")
}

func resetSimulateCommandState() {
	simulateOutDir = ""
	simulateNoDelay = false
	simulateStopAtStored = false
	simulateTranscript = ""
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <file>",
	Short: "Upload, encrypt and restore a file in a paced simulation",
	Long: `Walks a local file through the four steps of cloud storage: a secure
upload channel, encryption, storage and decryption. The encryption key shown
is the SHA-256 digest of the file. Once restored, an identical copy of the
file is saved to your downloads directory.

The file never leaves your machine.

Examples:
  # Run the full simulation
  cloudsafe simulate laporan.pdf

  # Skip the pauses and save the copy next to you
  cloudsafe simulate foto.png --no-delay --out .

  # Record every phase transition
  cloudsafe simulate foto.png --transcript run.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting simulate command")
		Logger.Debugf("Flags: out=%q, no-delay=%t, stop-at-stored=%t, transcript=%q",
			simulateOutDir, simulateNoDelay, simulateStopAtStored, simulateTranscript)

		text, err := content.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load narrative text: %v", err)
		}

		file, err := simulation.OpenFile(args[0])
		if err != nil {
			Logger.Errorf("Failed to open %s: %v", args[0], err)
			fmt.Println(fileErrorMessage(args[0], err))
			return nil
		}
		Logger.Infof("Selected %s (%d bytes, %s)", file.Name, file.Size, file.MIME)

		s, cleanup := startSpinner(text.StatusMessage(simulation.Idle, file.Name))
		defer cleanup()

		printAboveSpinner(s, fmt.Sprintf("%s: %s %s %s",
			text.ActiveFile, ui.Highlight.Sprint(file.Name),
			ui.Muted.Sprint(utils.FormatSize(file.Size)), ui.Muted.Sprint(file.MIME)))

		opts := workflows.SimulateOptions{
			File:           file,
			Delays:         Settings.Simulation.Delays(),
			OutputDir:      downloadDir(),
			FallbackName:   Settings.Simulation.FallbackName,
			StopAtStored:   simulateStopAtStored,
			TranscriptPath: simulateTranscript,
		}
		if simulateNoDelay {
			opts.Delays = simulation.Delays{}
		}
		reporter := &phaseReporter{text: text, spinner: s}
		opts.Observers = append(opts.Observers, reporter.observe)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		result, err := workflows.Simulate(ctx, opts)
		if err != nil {
			s.FinalMSG = runErrorMessage(text, err)
			return nil
		}

		if simulateStopAtStored {
			Logger.Infof("Stopped at stored phase (run %s)", result.RunID)
			s.FinalMSG = ui.Success.Sprint("✓") + " " + text.StatusMessage(simulation.Stored, file.Name) + "\n" +
				ui.Info.Sprint("→") + " Run without " + ui.Flag.Sprint("--stop-at-stored") + " to " + text.Actions.Decrypt
			return nil
		}

		Logger.Infof("Simulate command completed successfully. Restored file at %s", result.Download)
		s.FinalMSG = ui.Success.Sprint("✓") + " " + text.StatusMessage(simulation.Complete, file.Name) + "\n" +
			"Saved to " + ui.Path.Sprint(result.Download) + "\n" +
			ui.Info.Sprint("→") + " " + text.ResetCaption(result.Phase) + ": " + ui.Code.Sprint("cloudsafe simulate <file>")
		return nil
	},
}

// phaseReporter mirrors simulation transitions on the terminal.
type phaseReporter struct {
	text    *content.Content
	spinner *spinner.Spinner
	step    string
}

func (r *phaseReporter) observe(ev simulation.Event) {
	Logger.Debugf("Phase %s -> %s (run %s)", ev.From, ev.To, ev.RunID)

	if ev.To == simulation.Stored {
		printAboveSpinner(r.spinner, fmt.Sprintf("%s: %s", r.text.KeyCaption, ui.Key.Sprint(utils.GroupKey(ev.Key))))
	}
	if step, ok := r.text.ActiveStep(ev.To); ok && step.ID != r.step {
		r.step = step.ID
		printAboveSpinner(r.spinner, ui.Active.Sprint(step.Title)+"\n  "+ui.Muted.Sprint(step.Description))
	}
	if ev.To.Busy() {
		setSpinnerMessage(r.spinner, r.text.StatusMessage(ev.To, ev.File))
	}
}

func downloadDir() string {
	if simulateOutDir != "" {
		return simulateOutDir
	}
	return Settings.Simulation.DownloadDir()
}

func fileErrorMessage(path string, err error) string {
	switch {
	case errors.Is(err, kerrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " File " + ui.Path.Sprint(path) + " does not exist"
	case errors.Is(err, kerrors.ErrNotRegularFile):
		return ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " is not a regular file\n" +
			ui.Info.Sprint("→") + " Pick a single file to upload"
	}
	return ui.Error.Sprint("✗") + " Failed to open " + ui.Path.Sprint(path) + "\n" +
		ui.Error.Sprint("Error: ") + err.Error()
}

func runErrorMessage(text *content.Content, err error) string {
	Logger.Errorf("Simulation stopped: %v", err)
	switch {
	case errors.Is(err, kerrors.ErrSimulationReset):
		return ui.Warning.Sprint("⚠") + " Simulation cancelled, nothing was kept"
	case errors.Is(err, kerrors.ErrFileChanged):
		return ui.Error.Sprint("✗") + " " + text.Status.Failed + "\n" +
			ui.Info.Sprint("→") + " The file changed while the simulation ran. Run " + ui.Code.Sprint("cloudsafe simulate") + " again"
	case errors.Is(err, kerrors.ErrDigestFailed), errors.Is(err, kerrors.ErrDownloadFailed):
		return ui.Error.Sprint("✗") + " " + text.Status.Failed + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
	return ui.Error.Sprint("✗") + " " + err.Error()
}
