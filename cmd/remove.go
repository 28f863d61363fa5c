package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alantheprice/scribe/pkg/config"
	"github.com/alantheprice/scribe/pkg/filediscovery"
	"github.com/alantheprice/scribe/pkg/git"
	"github.com/alantheprice/scribe/pkg/history"
	"github.com/alantheprice/scribe/pkg/preview"
	"github.com/alantheprice/scribe/pkg/prompts"
	"github.com/alantheprice/scribe/pkg/strip"
	"github.com/alantheprice/scribe/pkg/styles"
	"github.com/alantheprice/scribe/pkg/ui"
	"github.com/alantheprice/scribe/pkg/utils"
)

// removeCommentsCmd strips comments from an explicit file set, or from
// every supported file in the codebase when no arguments are given.
var removeCommentsCmd = &cobra.Command{
	Use:   "remove-comments [files...]",
	Short: "Strip comments from files or the whole codebase",
	Long: `Remove line and block comments from the given files. With no
arguments, scans the whole codebase, skipping hidden directories,
dependency directories and anything matched by .gitignore or
.scribe/.ignore. The removal is recorded in the history document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrInit(skipPrompt)
		if err != nil {
			return err
		}

		files := args
		if len(files) == 0 {
			files, err = discoverFiles(cfg)
			if err != nil {
				return err
			}
		}
		if len(files) == 0 {
			fmt.Println("No supported files found.")
			return nil
		}

		if !cfg.SkipPrompt && ui.IsInteractive() {
			if !ui.PromptForConfirmation(prompts.ConfirmRemoval(len(files)), false) {
				fmt.Println(prompts.RemovalSkipped())
				utils.Log("comment removal cancelled by user")
				return nil
			}
		}

		record := history.RemovalRecord{Timestamp: time.Now()}
		for _, path := range files {
			removed, diff, err := stripFile(path)
			if err != nil {
				fmt.Println(prompts.Warn("skipping %s: %v", path, err))
				utils.LogError(err)
				continue
			}
			record.FilesProcessed = append(record.FilesProcessed, path)
			if removed > 0 {
				fmt.Printf("%s:\n%s\n", path, diff)
				record.CommentsRemoved += removed
				record.Details = append(record.Details, history.RemovalDetail{
					File:            path,
					CommentsRemoved: removed,
				})
			}
		}

		doc, corrupt := history.Load(history.DefaultPath)
		if corrupt {
			fmt.Println(prompts.HistoryCorrupt(history.DefaultPath))
		}
		doc = history.AppendRemoval(doc, record)
		if err := history.Save(history.DefaultPath, doc); err != nil {
			return fmt.Errorf("could not save history: %w", err)
		}

		fmt.Println(prompts.RemovalSummary(len(record.FilesProcessed), record.CommentsRemoved))
		utils.Logf("removed %d comment(s) across %d file(s)", record.CommentsRemoved, len(record.FilesProcessed))
		return nil
	},
}

// discoverFiles walks the working directory for supported source files,
// honoring ignore rules and configured exclusions.
func discoverFiles(cfg *config.Config) ([]string, error) {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, d := range cfg.ExcludeDirs {
		excluded[d] = true
	}
	exclude := func(name string, isDir bool) bool {
		if isDir && excluded[name] {
			return true
		}
		return filediscovery.DefaultExclude(name, isDir)
	}

	ignoreRoot := "."
	if git.IsRepository() {
		if root, err := git.RootDir(); err == nil {
			ignoreRoot = root
		}
	}
	rules := filediscovery.GetIgnoreRules(ignoreRoot)
	accept := filediscovery.IgnoreAwareAccept(rules, func(path string) bool {
		return styles.Supported(filepath.Ext(path))
	})
	return filediscovery.Walk(".", exclude, accept)
}

// stripFile rewrites path without its comments, returning how many were
// removed and a rendered before/after diff. The file is left untouched
// when nothing was removed.
func stripFile(path string) (int, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, "", err
	}
	stripped, removed := strip.StripFileContent(string(data), filepath.Ext(path))
	if removed == 0 {
		return 0, "", nil
	}
	if err := os.WriteFile(path, []byte(stripped), 0644); err != nil {
		return 0, "", err
	}
	return removed, preview.RenderDiff(string(data), stripped), nil
}
