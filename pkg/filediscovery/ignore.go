package filediscovery

import (
	"bufio"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// GetIgnoreRules reads ignore files (.gitignore, .scribe/.ignore) under
// rootDir and compiles them into one matcher. Returns nil when no rules
// exist.
func GetIgnoreRules(rootDir string) *ignore.GitIgnore {
	var allRules []string

	for _, rel := range []string{".gitignore", filepath.Join(".scribe", ".ignore")} {
		if rules, err := readIgnoreFile(filepath.Join(rootDir, rel)); err == nil {
			allRules = append(allRules, rules...)
		}
	}

	if len(allRules) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(allRules...)
}

// IgnoreAwareAccept wraps an accept predicate so paths matching the ignore
// rules are rejected first.
func IgnoreAwareAccept(rules *ignore.GitIgnore, accept AcceptFunc) AcceptFunc {
	return func(path string) bool {
		if rules != nil && rules.MatchesPath(path) {
			return false
		}
		return accept == nil || accept(path)
	}
}

func readIgnoreFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
