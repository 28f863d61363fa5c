package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alantheprice/scribe/pkg/apikeys"
	"github.com/alantheprice/scribe/pkg/config"
	"github.com/alantheprice/scribe/pkg/git"
	"github.com/alantheprice/scribe/pkg/history"
	"github.com/alantheprice/scribe/pkg/insert"
	"github.com/alantheprice/scribe/pkg/llm"
	"github.com/alantheprice/scribe/pkg/prompts"
	"github.com/alantheprice/scribe/pkg/snippets"
	"github.com/alantheprice/scribe/pkg/styles"
	"github.com/alantheprice/scribe/pkg/synthesis"
	"github.com/alantheprice/scribe/pkg/types"
	"github.com/alantheprice/scribe/pkg/ui"
	"github.com/alantheprice/scribe/pkg/utils"
)

// runGenerate is the default action: comment every code unit found in
// the files changed in the git working tree.
func runGenerate() error {
	cfg, err := config.LoadOrInit(skipPrompt)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	ctx := context.Background()
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	if !git.IsRepository() {
		fmt.Println(prompts.NotAGitRepo())
		return nil
	}
	changed, err := git.ChangedFiles()
	if err != nil {
		return fmt.Errorf("could not list changed files: %w", err)
	}
	files := filterSupported(changed)
	if len(files) == 0 {
		fmt.Println(prompts.NoChangedFiles())
		return nil
	}
	utils.Logf("annotating %d changed file(s)", len(files))

	suggestions := synthesizeAll(ctx, cfg, backend, files)
	info := &types.CodebaseInfo{FilesScanned: len(files), Files: files}

	doc, corrupt := history.Load(history.DefaultPath)
	if corrupt {
		fmt.Println(prompts.HistoryCorrupt(history.DefaultPath))
	}
	doc = history.AppendGeneration(doc, suggestions, info)
	if err := history.Save(history.DefaultPath, doc); err != nil {
		return fmt.Errorf("could not save history: %w", err)
	}
	if latest := history.Latest(doc); latest != nil {
		fmt.Println(prompts.GenerationSaved(latest.ID, len(suggestions)))
	}

	if cfg.DryRun {
		for _, s := range suggestions {
			printSuggestionPreview(s)
		}
		return nil
	}

	accepted := suggestions
	if !cfg.SkipPrompt && ui.IsInteractive() {
		accepted = reviewSuggestions(suggestions)
	}
	applySuggestions(accepted)
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if creativity > 0 {
		cfg.Creativity = creativity
	}
	cfg.DryRun = dryRun
}

// buildBackend resolves credentials and constructs the text generator.
// A missing key for a provider that needs one is fatal.
func buildBackend(ctx context.Context, cfg *config.Config) (llm.TextGenerator, error) {
	opts := llm.Options{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		ServerURL: cfg.OllamaServerURL,
	}
	if cfg.Provider != "ollama" {
		key, err := apikeys.GetAPIKey(cfg.Provider, !cfg.SkipPrompt && ui.IsInteractive())
		if err != nil {
			fmt.Println(prompts.CredentialSetupFailed(cfg.Provider))
			utils.LogError(err)
			os.Exit(1)
		}
		opts.APIKey = key
	}
	return llm.NewGenerator(ctx, opts)
}

func filterSupported(paths []string) []string {
	var out []string
	for _, p := range paths {
		if styles.Supported(filepath.Ext(p)) {
			out = append(out, p)
		}
	}
	return out
}

// synthesizeAll extracts code units from each file and asks the backend
// for a comment per unit. A failed unit is logged and skipped; one bad
// call never aborts the run.
func synthesizeAll(ctx context.Context, cfg *config.Config, backend llm.TextGenerator, files []string) []types.Suggestion {
	var suggestions []types.Suggestion
	for _, path := range files {
		fmt.Println(prompts.ScanningFile(path))
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Println(prompts.Warn("could not read %s: %v", path, err))
			utils.LogError(err)
			continue
		}
		ext := filepath.Ext(path)
		units := snippets.Extract(string(content), ext)
		fmt.Println(prompts.FileDone(path, len(units)))
		for _, unit := range units {
			comment, err := synthesis.Synthesize(ctx, unit, styles.LanguageName(ext), backend, cfg.Creativity, cfg.MaxOutputTokens)
			if err != nil {
				fmt.Println(prompts.SynthesisFailed(path, unit.StartLine, err))
				utils.LogError(err)
				continue
			}
			suggestions = append(suggestions, types.Suggestion{
				File:             path,
				Line:             unit.StartLine,
				CodeSnippet:      unit.Text,
				SuggestedComment: comment,
			})
		}
	}
	return suggestions
}

func applySuggestions(suggestions []types.Suggestion) {
	applied, failed := insert.ApplyBatch(suggestions)
	for _, f := range failed {
		fmt.Println(prompts.ApplyFailed(f.File, f.Err))
		utils.LogError(f.Err)
	}
	for _, s := range applied {
		fmt.Println(prompts.SuggestionApplied(s.File, s.Line))
	}
	utils.Logf("applied %d suggestion(s), %d failed", len(applied), len(failed))
}
