package crabcamera

import (
	"io"

	"github.com/Seif10284/crabcamera/internal/report"
	"github.com/Seif10284/crabcamera/pkg/catalog"
)

// Version is the release version of the crabcamera demonstration tool.
var Version = "0.1.0"

// Demonstrate writes the full demonstration report to w. The output is
// deterministic: repeated calls produce byte-identical bytes.
func Demonstrate(w io.Writer) error {
	return report.WritePlain(w, catalog.Default())
}

// Report returns the demonstration report as a string.
func Report() string {
	return report.Plain(catalog.Default())
}

// Commands returns the Tauri command catalog described by the report.
func Commands() []catalog.Command {
	return catalog.Default().Commands
}
