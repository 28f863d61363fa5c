package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alantheprice/scribe/pkg/preview"
	"github.com/alantheprice/scribe/pkg/prompts"
	"github.com/alantheprice/scribe/pkg/types"
	"github.com/alantheprice/scribe/pkg/ui"
	"github.com/alantheprice/scribe/pkg/utils"
)

// reviewSuggestions walks the user through each suggestion with a diff
// preview. Returns the suggestions to apply; "exit" keeps decisions
// made so far and drops the rest.
func reviewSuggestions(suggestions []types.Suggestion) []types.Suggestion {
	var accepted []types.Suggestion
	for i, s := range suggestions {
		fmt.Printf("\nSuggestion %d of %d\n", i+1, len(suggestions))
		printSuggestionPreview(s)

		choice := ui.PromptForSelection(prompts.ReviewPrompt(), []string{"a", "s", "e", "x"})
		utils.LogUserInteraction(fmt.Sprintf("review %s:%d", s.File, s.Line), choice)
		switch choice {
		case "a":
			accepted = append(accepted, s)
		case "s":
			// skipped
		case "e":
			edited := ui.ReadLine("Replacement comment: ")
			if edited != "" {
				s.SuggestedComment = edited
			}
			accepted = append(accepted, s)
		case "x":
			return accepted
		}
	}
	return accepted
}

func printSuggestionPreview(s types.Suggestion) {
	content, err := os.ReadFile(s.File)
	if err != nil {
		fmt.Printf("%s:%d\n  %s\n", s.File, s.Line, s.SuggestedComment)
		return
	}
	fmt.Print(preview.RenderSuggestion(string(content), s, filepath.Ext(s.File)))
}
