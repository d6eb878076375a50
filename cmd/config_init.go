package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/cloudsafe/internal/configs"
	"github.com/PolarWolf314/cloudsafe/internal/theme"
	"github.com/PolarWolf314/cloudsafe/internal/ui"

	"github.com/spf13/cobra"
)

var (
	configInitUploadDelay  int
	configInitEncryptDelay int
	configInitDecryptDelay int
	configInitOutDir       string
	configInitFallbackName string
	configInitForce        bool
)

func init() {
	defaults := configs.DefaultConfig().Simulation
	configInitCmd.Flags().IntVar(&configInitUploadDelay, "upload-delay", defaults.UploadDelayMS, "upload pause in milliseconds")
	configInitCmd.Flags().IntVar(&configInitEncryptDelay, "encrypt-delay", defaults.EncryptDelayMS, "encryption pause in milliseconds")
	configInitCmd.Flags().IntVar(&configInitDecryptDelay, "decrypt-delay", defaults.DecryptDelayMS, "decryption pause in milliseconds")
	configInitCmd.Flags().StringVar(&configInitOutDir, "out-dir", "", "directory restored files are saved to")
	configInitCmd.Flags().StringVar(&configInitFallbackName, "fallback-name", defaults.FallbackName, "name used when the original file has none")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	defaults := configs.DefaultConfig().Simulation
	configInitUploadDelay = defaults.UploadDelayMS
	configInitEncryptDelay = defaults.EncryptDelayMS
	configInitDecryptDelay = defaults.DecryptDelayMS
	configInitOutDir = ""
	configInitFallbackName = defaults.FallbackName
	configInitForce = false
	resetConfigFlags()
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long: `Writes the user config file with the given settings. The --theme flag,
when given, is saved as the default theme.

Examples:
  cloudsafe config init
  cloudsafe config init --theme light --out-dir ~/Desktop
  cloudsafe config init --force --upload-delay 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		path := configs.ConfigPath()

		if _, err := os.Stat(path); err == nil && !configInitForce {
			Logger.Infof("Config file already exists at %s", path)
			fmt.Println(ui.Warning.Sprint("⚠") + " Config file already exists at " + ui.Path.Sprint(path) + "\n" +
				ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force") + " to overwrite it")
			return nil
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Logger.ErrorfAndReturn("Failed to check config file: %v", err)
		}

		cfg := configs.DefaultConfig()
		if themeFlag != "" {
			mode, err := theme.ParseMode(themeFlag)
			if err != nil {
				return Logger.ErrorfAndReturn("Invalid theme: %v", err)
			}
			cfg.Presentation.Theme = string(mode)
		}
		cfg.Simulation = configs.SimulationConfig{
			UploadDelayMS:  configInitUploadDelay,
			EncryptDelayMS: configInitEncryptDelay,
			DecryptDelayMS: configInitDecryptDelay,
			OutputDir:      configInitOutDir,
			FallbackName:   configInitFallbackName,
		}
		Logger.Debugf("Writing config: %+v", *cfg)

		if err := configs.SaveConfig(cfg); err != nil {
			Logger.Errorf("Failed to save config: %v", err)
			fmt.Println(ui.Error.Sprint("✗") + " Failed to write config\n" +
				ui.Error.Sprint("Error: ") + err.Error())
			return nil
		}

		Logger.Infof("Config written to %s", path)
		fmt.Println(ui.Success.Sprint("✓") + " Config written to " + ui.Path.Sprint(path))
		return nil
	},
}
