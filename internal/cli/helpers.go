package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var labelStyle = color.New(color.Bold).SprintFunc()

// printSection renders a command's text payload under its display label,
// mirroring the labeled output sections of the editor surface.
func printSection(w io.Writer, label, text string) {
	fmt.Fprintln(w, labelStyle(label))
	fmt.Fprintln(w, text)
}

// defaultWorkspaceRoot returns the current directory, or "" when it cannot
// be determined (no workspace).
func defaultWorkspaceRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
