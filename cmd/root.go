package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/embedgen/embedgen/internal/ui"
	"github.com/embedgen/embedgen/version"
)

// Flag values bound in init. They override (or extend) the optional
// embedgen.yaml configuration.
var (
	configPath   string
	noIndexAlias bool
	logLevel     string
)

// rootCmd represents the base command. embedgen has a single job, so the
// root command itself performs the generation instead of dispatching to
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "embedgen <input_folder> <output_base>",
	Short: "Embed a folder's files as C byte arrays",
	Long: `embedgen walks a directory tree and generates a pair of C source files
(<output_base>.c and <output_base>.h) embedding every file's raw bytes as
byte-array constants, plus a lookup table mapping each file's path to its
array, length, and content type. A program linked against the output can
serve those files without touching the filesystem at runtime.`,
	Version: version.Version,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(args[0], args[1]); err != nil {
			ui.PrintError("generate", err.Error())
			os.Exit(1)
		}
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "embedgen.yaml", "Path to the configuration file")
	rootCmd.Flags().BoolVar(&noIndexAlias, "no-index-alias", false, "Do not synthesize the \"/\" table row for a top-level index.html")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
}
