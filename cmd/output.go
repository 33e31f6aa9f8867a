package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Human-facing commands use these so icons and indentation stay consistent.
// JSON results never go through them.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr by callers)
//   ⚠  warning
//   -  not found / missing
//   ~  neutral info

var (
	iconOK   = color.New(color.FgGreen).Sprint("✓")
	iconErr  = color.New(color.FgRed).Sprint("✗")
	iconWarn = color.New(color.FgYellow).Sprint("⚠")
	iconMiss = color.New(color.Faint).Sprint("-")
	iconInfo = color.New(color.FgCyan).Sprint("~")
)

// printSection prints a top-level section header, e.g. "=== Catalog ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", color.New(color.Bold).Sprint(title))
}

// printLine prints one icon line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

func printOK(w io.Writer, name, msg string)   { printLine(w, iconOK, name, msg) }
func printErr(w io.Writer, name, msg string)  { printLine(w, iconErr, name, msg) }
func printWarn(w io.Writer, name, msg string) { printLine(w, iconWarn, name, msg) }
func printMiss(w io.Writer, name, msg string) { printLine(w, iconMiss, name, msg) }
func printInfo(w io.Writer, name, msg string) { printLine(w, iconInfo, name, msg) }

// writeJSON pretty-prints v with two-space indentation and without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot write JSON output: %w", err)
	}
	return nil
}
