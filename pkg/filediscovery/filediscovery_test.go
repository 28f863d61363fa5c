package filediscovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x\n"), 0644))
	}
	return root
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var rel []string
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	sort.Strings(rel)
	return rel
}

func TestWalkDefaultExclusions(t *testing.T) {
	root := buildTree(t,
		"main.js",
		"lib/util.py",
		"node_modules/dep/index.js",
		"vendor/pkg/a.go",
		".git/config",
		".hidden.js",
		"dist/out.js",
	)

	files, err := Walk(root, DefaultExclude, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"lib/util.py", "main.js"}, relAll(t, root, files))
}

func TestWalkAcceptPredicate(t *testing.T) {
	root := buildTree(t, "a.js", "b.py", "c.txt", "README.md")

	accept := func(path string) bool {
		ext := filepath.Ext(path)
		return ext == ".js" || ext == ".py"
	}
	files, err := Walk(root, DefaultExclude, accept)
	require.NoError(t, err)
	require.Equal(t, []string{"a.js", "b.py"}, relAll(t, root, files))
}

func TestWalkIsRestartable(t *testing.T) {
	root := buildTree(t, "a.js", "sub/b.js")

	first, err := Walk(root, DefaultExclude, nil)
	require.NoError(t, err)
	second, err := Walk(root, DefaultExclude, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestIgnoreAwareAccept(t *testing.T) {
	root := buildTree(t, "keep.js", "generated/out.js")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\n"), 0644))

	rules := GetIgnoreRules(root)
	require.NotNil(t, rules)

	accept := IgnoreAwareAccept(rules, func(path string) bool {
		return strings.HasSuffix(path, ".js")
	})
	files, err := Walk(root, DefaultExclude, func(path string) bool {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		return accept(filepath.ToSlash(rel))
	})
	require.NoError(t, err)
	require.Equal(t, []string{"keep.js"}, relAll(t, root, files))
}

func TestGetIgnoreRulesMissingFiles(t *testing.T) {
	require.Nil(t, GetIgnoreRules(t.TempDir()))
}
