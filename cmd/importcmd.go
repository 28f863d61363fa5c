package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alantheprice/scribe/pkg/history"
	"github.com/alantheprice/scribe/pkg/prompts"
	"github.com/alantheprice/scribe/pkg/ui"
)

// importCmd applies the latest generation from a saved history document.
var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Apply suggestions from a saved history document",
	Long: `Load a history document (or a legacy plain suggestion array) and apply
the suggestions from its most recent generation. Defaults to the project
history at ` + history.DefaultPath + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := history.DefaultPath
		if len(args) == 1 {
			path = args[0]
		}

		// Corruption is a warning, never fatal: the document reads as
		// empty and the command becomes a no-op.
		doc, corrupt := history.Load(path)
		if corrupt {
			fmt.Println(prompts.HistoryCorrupt(path))
		}
		latest := history.Latest(doc)
		if latest == nil || len(latest.Suggestions) == 0 {
			fmt.Println(prompts.NoHistory())
			return nil
		}

		fmt.Printf("Importing generation %s (%d suggestion(s))\n", latest.ID, len(latest.Suggestions))
		accepted := latest.Suggestions
		if !skipPrompt && ui.IsInteractive() {
			accepted = reviewSuggestions(latest.Suggestions)
		}
		applySuggestions(accepted)
		return nil
	},
}
