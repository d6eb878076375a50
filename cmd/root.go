package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/cloudsafe/internal/configs"
	logger "github.com/PolarWolf314/cloudsafe/internal/logging"
	"github.com/PolarWolf314/cloudsafe/internal/theme"
	"github.com/PolarWolf314/cloudsafe/internal/ui"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	debug     bool
	themeFlag string
	Logger    logger.Logger

	// Settings is the user configuration, loaded before every command.
	Settings = configs.DefaultConfig()

	RootCmd = &cobra.Command{
		Use:   "cloudsafe",
		Short: "Cloud Safe - an interactive lesson on how cloud storage keeps files safe.",
		Long: `Cloud Safe walks through what happens to a file when it is uploaded to
cloud storage: the secure channel, encryption, storage and decryption.
Nothing leaves your machine and no real encryption takes place.

Available Commands:
  tour       Read the story panels one by one
  simulate   Upload, encrypt and restore a file in a paced simulation
  strength   Grade a password with the strength meter
  quiz       Answer five questions about cloud security
  faq        Browse the frequently asked questions
  config     Manage Cloud Safe configuration

Run 'cloudsafe help <command>' for more details on a specific command.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

			cfg, err := configs.LoadConfig()
			if err != nil {
				Logger.Warnf("Ignoring config file: %v", err)
				cfg = configs.DefaultConfig()
			}
			Settings = cfg

			mode, err := theme.Resolve(themeFlag, os.Getenv(theme.EnvMarker), cfg.Presentation.Theme)
			if err != nil {
				return Logger.ErrorfAndReturn("Invalid theme: %v", err)
			}
			if theme.Current.Init(mode) {
				Logger.Debugf("Theme set to %s", mode)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(ui.Banner("CLOUD SAFE"))
			fmt.Println("Simulasi Edukasi Enkripsi Data di Cloud Storage")
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cloudsafe tour") + " to start, or " + ui.Code.Sprint("cloudsafe --help") + " to see every command")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme for interactive views (light or dark)")

	RootCmd.AddCommand(simulateCmd)
	RootCmd.AddCommand(strengthCmd)
	RootCmd.AddCommand(quizCmd)
	RootCmd.AddCommand(tourCmd)
	RootCmd.AddCommand(faqCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	themeFlag = ""
	Settings = configs.DefaultConfig()
	resetSimulateCommandState()
	resetStrengthCommandState()
	resetQuizCommandState()
	resetTourCommandState()
	resetConfigShowState()
	resetConfigInitState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
