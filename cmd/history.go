package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alantheprice/scribe/pkg/history"
	"github.com/alantheprice/scribe/pkg/prompts"
)

// historyCmd lists past generation runs, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past suggestion generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, corrupt := history.Load(history.DefaultPath)
		if corrupt {
			fmt.Println(prompts.HistoryCorrupt(history.DefaultPath))
			return nil
		}
		if len(doc) == 0 {
			fmt.Println(prompts.NoHistory())
			return nil
		}
		for i := len(doc) - 1; i >= 0; i-- {
			gen := doc[i]
			fmt.Printf("%s  %s  %d suggestion(s)\n", gen.ID, gen.Timestamp.Format("2006-01-02 15:04:05"), len(gen.Suggestions))
			if gen.CodebaseInfo != nil {
				fmt.Printf("    scanned %d file(s)\n", gen.CodebaseInfo.FilesScanned)
			}
			if gen.CommentRemoval != nil {
				fmt.Printf("    removed %d comment(s) from %d file(s)\n",
					gen.CommentRemoval.CommentsRemoved, len(gen.CommentRemoval.FilesProcessed))
			}
		}
		return nil
	},
}
