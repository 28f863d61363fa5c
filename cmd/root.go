package cmd

import (
	"github.com/spf13/cobra"
)

var (
	skipPrompt bool
	dryRun     bool
	modelFlag  string
	creativity float64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "LLM-assisted source code commenting",
	Long: `Scribe scans your changed source files, extracts functions and other
code units, asks an LLM to write a short documentation comment for each
one, and inserts the comments you approve directly into the files. Every
run is recorded in .scribe/history.json.

Run with no arguments to comment the files changed in your git working
tree. Other commands:
  import           - apply suggestions from a saved history document
  remove-comments  - strip comments from files or the whole codebase
  history          - list past generation runs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&skipPrompt, "skip-prompt", false, "Run without interactive confirmations")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Synthesize and record suggestions without touching files")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Override the configured model")
	rootCmd.Flags().Float64Var(&creativity, "creativity", 0, "Override sampling temperature (0..1)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(removeCommentsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
