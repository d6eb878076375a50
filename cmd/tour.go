package cmd

import (
	"fmt"

	"github.com/PolarWolf314/cloudsafe/internal/content"
	"github.com/PolarWolf314/cloudsafe/internal/ui"
	"github.com/PolarWolf314/cloudsafe/internal/utils"

	"github.com/spf13/cobra"
)

const tourRuleWidth = 60

var tourNoPause bool

func init() {
	tourCmd.Flags().BoolVar(&tourNoPause, "no-pause", false, "print every panel without waiting for Enter")
}

func resetTourCommandState() {
	tourNoPause = false
}

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Read the story panels one by one",
	Long: `Shows the Cloud Safe story one panel at a time. Press Enter to move to the
next panel. Panels that have a hands-on part name the command to run.

Examples:
  cloudsafe tour
  cloudsafe tour --no-pause`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting tour command")
		text, err := content.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load narrative text: %v", err)
		}

		pause := !tourNoPause && utils.IsTerminal()
		Logger.Debugf("Showing %d panels, pause=%t", len(text.Panels), pause)

		for i, panel := range text.Panels {
			if pause && i > 0 {
				if err := utils.ClearScreen(); err != nil {
					Logger.Debugf("Could not clear screen: %v", err)
				}
			}
			printPanel(i, len(text.Panels), panel)

			if pause && i < len(text.Panels)-1 {
				fmt.Print(ui.Muted.Sprint("Enter ↵"))
				if err := utils.WaitForEnterFromTTY(); err != nil {
					return Logger.ErrorfAndReturn("Failed to read from terminal: %v", err)
				}
			}
		}
		return nil
	},
}

func printPanel(i, total int, panel content.Panel) {
	if i == 0 {
		fmt.Print(ui.Banner(panel.Title))
	} else {
		fmt.Println(ui.Muted.Sprintf("%d/%d", i+1, total) + " " + ui.Highlight.Sprint(panel.Title))
	}
	fmt.Println(ui.Rule(tourRuleWidth))
	fmt.Println(panel.Body)
	if panel.Command != "" {
		fmt.Println()
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint(panel.Command))
	}
	fmt.Println()
}
