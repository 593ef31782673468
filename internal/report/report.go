// Package report renders the demonstration catalog to text. The plain
// renderer reproduces the original demo output line for line; the markdown
// renderer produces the same content as a Markdown document for styled
// terminal display.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Seif10284/crabcamera/pkg/catalog"
)

// Section headings emitted by the plain renderer, in output order.
const (
	HeadingCommands   = "SAMPLE TAURI COMMANDS AVAILABLE"
	HeadingSpecs      = "TECHNICAL SPECIFICATIONS"
	HeadingAdvantages = "COMPETITIVE ADVANTAGES"
)

const separatorWidth = 65

// WritePlain writes the full demonstration report to w. The output is a
// pure function of the catalog: no timestamps, no environment lookups,
// so repeated calls produce byte-identical bytes.
func WritePlain(w io.Writer, c catalog.Catalog) error {
	var sb strings.Builder

	sb.WriteString(c.Title)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", separatorWidth))
	sb.WriteByte('\n')

	// The integration block carries its own leading and trailing newline.
	sb.WriteString(c.Integration)
	sb.WriteByte('\n')

	sb.WriteString("\n🔧 " + HeadingCommands + ":\n")
	for i, cmd := range c.Commands {
		fmt.Fprintf(&sb, "  %2d. %s\n", i+1, cmd.Signature())
	}

	sb.WriteString("\n📊 " + HeadingSpecs + ":\n")
	for _, spec := range c.Specs {
		fmt.Fprintf(&sb, "  • %s\n", spec)
	}

	sb.WriteString("\n🆚 " + HeadingAdvantages + ":\n")
	for _, adv := range c.Advantages {
		fmt.Fprintf(&sb, "  ✅ %s\n", adv)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Plain returns the report as a string.
func Plain(c catalog.Catalog) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = WritePlain(&sb, c)
	return sb.String()
}
