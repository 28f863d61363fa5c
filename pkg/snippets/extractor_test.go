package snippets

import (
	"strings"
	"testing"
)

func TestExtractEmptyContent(t *testing.T) {
	if units := Extract("", ".js"); len(units) != 0 {
		t.Fatalf("expected no units for empty content, got %d", len(units))
	}
}

func TestExtractSingleLineBraceUnit(t *testing.T) {
	content := "const x = 1;\nfunction f() {}\nconst y = 2;\n"
	units := Extract(content, ".js")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].StartLine != 2 {
		t.Errorf("StartLine = %d, want 2", units[0].StartLine)
	}
	if units[0].Text != "function f() {}" {
		t.Errorf("Text = %q, want the trigger line alone", units[0].Text)
	}
}

func TestExtractBraceBalancedUnit(t *testing.T) {
	content := strings.Join([]string{
		"function add(a, b) {",
		"  return a + b;",
		"}",
		"",
		"function sub(a, b) {",
		"  return a - b;",
		"}",
	}, "\n")

	units := Extract(content, ".js")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].StartLine != 1 || units[1].StartLine != 5 {
		t.Errorf("start lines = %d, %d; want 1, 5", units[0].StartLine, units[1].StartLine)
	}
	if !strings.HasSuffix(units[0].Text, "}") {
		t.Errorf("unit should include closing brace, got %q", units[0].Text)
	}
}

func TestExtractFlattensNestedUnits(t *testing.T) {
	content := strings.Join([]string{
		"function outer() {",
		"  function inner() {",
		"    return 1;",
		"  }",
		"  return inner();",
		"}",
	}, "\n")

	units := Extract(content, ".js")
	if len(units) != 1 {
		t.Fatalf("nested units must flatten into one, got %d", len(units))
	}
	if !strings.Contains(units[0].Text, "function inner") {
		t.Error("outer unit should absorb the nested function")
	}
	if lines := strings.Split(units[0].Text, "\n"); len(lines) != 6 {
		t.Errorf("unit spans %d lines, want 6", len(lines))
	}
}

func TestExtractDropsUnclosedUnit(t *testing.T) {
	content := "function broken() {\n  return 1;"
	if units := Extract(content, ".js"); len(units) != 0 {
		t.Fatalf("unclosed unit must be dropped, got %d units", len(units))
	}
}

func TestExtractPythonDedent(t *testing.T) {
	content := strings.Join([]string{
		"def foo():",
		"    a = 1",
		"    return a",
		"print(foo())",
	}, "\n")

	units := Extract(content, ".py")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	want := "def foo():\n    a = 1\n    return a"
	if units[0].Text != want {
		t.Errorf("Text = %q, want %q", units[0].Text, want)
	}
	if units[0].StartLine != 1 {
		t.Errorf("StartLine = %d, want 1", units[0].StartLine)
	}
}

func TestExtractPythonBlankLineClosesUnit(t *testing.T) {
	// A blank line has no indentation, so the heuristic reads it as a
	// dedent. Known approximation, asserted here so a change is deliberate.
	content := "def foo():\n    a = 1\n\n    return a\n"
	units := Extract(content, ".py")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if strings.Contains(units[0].Text, "return") {
		t.Error("unit should close at the blank line")
	}
}

func TestExtractPythonConsecutiveDefs(t *testing.T) {
	content := "def a():\n    pass\ndef b():\n    pass\n"
	units := Extract(content, ".py")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[1].StartLine != 3 {
		t.Errorf("second unit StartLine = %d, want 3", units[1].StartLine)
	}
}

func TestExtractGoFunctions(t *testing.T) {
	content := strings.Join([]string{
		"package main",
		"",
		"func main() {",
		"\tprintln(\"hi\")",
		"}",
		"",
		"type point struct {",
		"\tx, y int",
		"}",
	}, "\n")

	units := Extract(content, ".go")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].StartLine != 3 || units[1].StartLine != 7 {
		t.Errorf("start lines = %d, %d; want 3, 7", units[0].StartLine, units[1].StartLine)
	}
}

func TestExtractUnknownExtensionUsesJSPattern(t *testing.T) {
	content := "function f() {\n  return 1;\n}\n"
	units := Extract(content, ".weird")
	if len(units) != 1 {
		t.Fatalf("unknown extension should fall back to the JS pattern, got %d units", len(units))
	}
}

func TestExtractIsRestartable(t *testing.T) {
	content := "function f() {}\n"
	first := Extract(content, ".js")
	second := Extract(content, ".js")
	if len(first) != len(second) || first[0] != second[0] {
		t.Error("Extract must be a pure function of its input")
	}
}
