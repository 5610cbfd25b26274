package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/cmd/commands"
	"github.com/pluqqy/microcomp/internal/cli"
	"github.com/pluqqy/microcomp/pkg/config"
	"github.com/pluqqy/microcomp/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath  string
	logLevel    string
	quiet       bool
	noColor     bool
	skipConfirm bool
	forceInit   bool
)

var rootCmd = &cobra.Command{
	Use:   "microcomp",
	Short: "Search box micro-language compiler",
	Long: `Microcomp compiles the search box language used to find documents:
free text, tag:, cat: and cf: filters with optional operators and quoted
values. It offers an interactive search bar with suggestions, command line
tools for each compiler stage and an HTTP API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cli.NewCommandContext(configPath, logLevel)
		settings := ctx.LoadSettingsWithDefault()
		registry, err := ctx.Registry()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load vocabulary: %v\n", err)
			os.Exit(1)
		}

		if err := tui.Run(*settings, registry, ctx.Logger()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a microcomp project",
	Long:  `Creates the .microcomp folder with a default config and an empty vocabulary in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		path, err := config.Init(cwd, forceInit)
		if errors.Is(err, config.ErrAlreadyInitialized) {
			cli.PrintWarning("%s already exists, use --force to overwrite it", path)
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		cli.PrintSuccess("Created %s", path)
		cli.PrintInfo("Run 'microcomp' to start the interactive search bar.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of microcomp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("microcomp version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .microcomp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")

	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewCompleteCommand())
	rootCmd.AddCommand(commands.NewValuesCommand())
	rootCmd.AddCommand(commands.NewSuggestCommand())
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVocabCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
