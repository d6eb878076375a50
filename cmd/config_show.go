package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/cloudsafe/internal/configs"
	"github.com/PolarWolf314/cloudsafe/internal/theme"
	"github.com/PolarWolf314/cloudsafe/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the configuration in effect: the config file merged over the
defaults, and the theme this run resolved to.

Examples:
  cloudsafe config show
  cloudsafe config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		path := configs.ConfigPath()

		if configShowJSON {
			output, err := json.MarshalIndent(Settings, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		source := path
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			Logger.Infof("No config file at %s, showing defaults", path)
			source = "defaults"
		}

		sim := Settings.Simulation
		fmt.Println(ui.Info.Sprint("Configuration") + " " + ui.Muted.Sprint(source))
		fmt.Println()
		fmt.Printf("  %-16s %s\n", "Theme:", ui.Highlight.Sprint(theme.Current.Mode()))
		fmt.Printf("  %-16s %s\n", "Upload delay:", ui.Success.Sprintf("%d ms", sim.UploadDelayMS))
		fmt.Printf("  %-16s %s\n", "Encrypt delay:", ui.Success.Sprintf("%d ms", sim.EncryptDelayMS))
		fmt.Printf("  %-16s %s\n", "Decrypt delay:", ui.Success.Sprintf("%d ms", sim.DecryptDelayMS))
		fmt.Printf("  %-16s %s\n", "Downloads:", ui.Path.Sprint(sim.DownloadDir()))
		fmt.Printf("  %-16s %s\n", "Fallback name:", ui.Path.Sprint(sim.FallbackName))

		if source == "defaults" {
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cloudsafe config init") + " to create a config file")
		}
		return nil
	},
}
