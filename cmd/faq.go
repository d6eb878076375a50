package cmd

import (
	"fmt"
	"strconv"

	"github.com/PolarWolf314/cloudsafe/internal/content"
	"github.com/PolarWolf314/cloudsafe/internal/ui"

	"github.com/spf13/cobra"
)

var faqCmd = &cobra.Command{
	Use:   "faq [number]",
	Short: "Browse the frequently asked questions",
	Long: `Lists the frequently asked questions. Pass a question number to expand
its answer; only one answer is shown at a time.

Examples:
  cloudsafe faq
  cloudsafe faq 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting faq command")
		text, err := content.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load narrative text: %v", err)
		}

		accordion := content.NewAccordion(len(text.FAQ))
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(text.FAQ) {
				fmt.Println(ui.Error.Sprint("✗") + " No question " + ui.Highlight.Sprint(args[0]) + "\n" +
					ui.Info.Sprint("→") + fmt.Sprintf(" Pick a number from 1 to %d", len(text.FAQ)))
				return nil
			}
			accordion.Toggle(n - 1)
		}

		printFAQ(text.FAQ, accordion)
		return nil
	},
}

func printFAQ(items []content.FAQ, accordion *content.Accordion) {
	for i, item := range items {
		marker := "+"
		if accordion.IsOpen(i) {
			marker = "-"
		}
		fmt.Printf("%s %s %s\n", ui.Muted.Sprint(marker), ui.Muted.Sprintf("%d.", i+1), item.Question)
		if accordion.IsOpen(i) {
			fmt.Println()
			fmt.Println("    " + item.Answer)
			fmt.Println()
		}
	}
	if _, open := accordion.Open(); !open {
		fmt.Println()
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cloudsafe faq <number>") + " to read an answer")
	}
}
