package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"layerdoc/internal/setting"
	"layerdoc/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotFound indicates a setting or preset lookup failed.
	ExitCodeNotFound = 2
	// ExitCodeUnsupported indicates a manifest declared a setting type
	// this build does not know.
	ExitCodeUnsupported = 3
)

var rootDebug bool

// rootCmd represents the base command for the layerdoc application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "layerdoc",
	Short: "Inspect Vulkan layer manifests and export their documentation",
	Long: `layerdoc reads Vulkan layer JSON manifests, models the layer's
settings tree and exports self-contained HTML documentation the way
the Vulkan Configurator does.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if rootDebug {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "layerdoc version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		exitCode := getExitCode(err)
		os.Exit(exitCode)
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var notFound *setting.NotFoundError
	if errors.As(err, &notFound) {
		return ExitCodeNotFound
	}

	var unsupported *setting.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return ExitCodeUnsupported
	}

	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
