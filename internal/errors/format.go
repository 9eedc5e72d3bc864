package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	codeLabel  = color.New(color.FgWhite, color.Bold).SprintFunc()
	locText    = color.New(color.FgCyan).SprintFunc()
	hintLabel  = color.New(color.FgCyan).SprintFunc()
	gutterText = color.New(color.FgHiBlack).SprintFunc()
	arrowText  = color.New(color.FgRed).SprintFunc()
	urlText    = color.New(color.FgBlue).SprintFunc()
)

// DisableColors disables color output globally.
func DisableColors() {
	color.NoColor = true
}

// Format returns a formatted multi-line error message for terminal display.
func (e *KirError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(errorLabel("ERROR "))
		b.WriteString(codeLabel(e.Code + ": "))
		b.WriteString(e.Message)
	} else {
		b.WriteString(errorLabel("ERROR: "))
		b.WriteString(e.Message)
	}
	b.WriteString("\n\n")

	if e.Location != nil {
		b.WriteString("  ")
		b.WriteString(locText(e.Location.String()))
		b.WriteString("\n\n")

		if len(e.Context) > 0 {
			startLine := e.Location.Line - len(e.Context)/2
			for i, line := range e.Context {
				lineNum := startLine + i
				if lineNum == e.Location.Line {
					b.WriteString("  ")
					b.WriteString(arrowText("→ "))
					b.WriteString(fmt.Sprintf("%4d", lineNum))
					b.WriteString(gutterText(" │ "))
					b.WriteString(line)
					b.WriteString("\n")

					if e.Location.Column > 0 {
						b.WriteString("       ")
						b.WriteString(gutterText("│ "))
						b.WriteString(strings.Repeat(" ", e.Location.Column-1))
						b.WriteString(arrowText("^"))
						b.WriteString("\n")
					}
				} else {
					b.WriteString("    ")
					b.WriteString(fmt.Sprintf("%4d", lineNum))
					b.WriteString(gutterText(" │ "))
					b.WriteString(line)
					b.WriteString("\n")
				}
			}
			b.WriteString("\n")
		}
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(hintLabel("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	if e.Example != "" {
		b.WriteString("  ")
		b.WriteString(hintLabel("Example:"))
		b.WriteString("\n")
		for _, line := range strings.Split(e.Example, "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(gutterText("Learn more: "))
		b.WriteString(urlText(e.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *KirError) FormatCompact() string {
	var b strings.Builder

	if e.Location != nil {
		b.WriteString(e.Location.String())
		b.WriteString(": ")
	}

	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}

	b.WriteString(e.Message)

	return b.String()
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	var current strings.Builder

	for _, word := range words {
		if current.Len()+len(word)+1 > width {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// PrintError prints a formatted error to stderr.
func PrintError(err error) {
	if ke, ok := err.(*KirError); ok {
		fmt.Fprint(os.Stderr, ke.Format())
	} else {
		fmt.Fprintf(os.Stderr, "\n%s %s\n\n", errorLabel("ERROR:"), err.Error())
	}
}
