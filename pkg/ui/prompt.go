package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal.
// Non-interactive runs must never block waiting for input.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadLine prints the prompt and returns one trimmed line from stdin.
func ReadLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(input)
}

// PromptForConfirmation asks a yes/no question. Empty input takes the
// default.
func PromptForConfirmation(question string, defaultYes bool) bool {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}
	for {
		answer := strings.ToLower(ReadLine(fmt.Sprintf("%s %s: ", question, suffix)))
		switch answer {
		case "":
			return defaultYes
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Println("Please answer y or n.")
	}
}

// PromptForSelection asks the user to pick one of the given single-rune
// choices, e.g. "a" (apply), "s" (skip). Input outside the choice set
// re-prompts; the first choice is the default for empty input.
func PromptForSelection(question string, choices []string) string {
	set := make(map[string]bool, len(choices))
	for _, c := range choices {
		set[c] = true
	}
	display := fmt.Sprintf("%s [%s]: ", question, strings.Join(choices, "/"))
	for {
		answer := strings.ToLower(ReadLine(display))
		if answer == "" {
			return choices[0]
		}
		if set[answer] {
			return answer
		}
		fmt.Printf("Please choose one of: %s\n", strings.Join(choices, ", "))
	}
}
