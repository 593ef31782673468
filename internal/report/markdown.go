package report

import (
	"fmt"
	"strings"

	"github.com/Seif10284/crabcamera/pkg/catalog"
)

// Markdown returns the catalog as a Markdown document. It restructures the
// same content as the plain report; rendering to ANSI is the presentation
// layer's job.
func Markdown(c catalog.Catalog) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", c.Title)

	sb.WriteString("```text\n")
	sb.WriteString(strings.TrimLeft(c.Integration, "\n"))
	sb.WriteString("```\n\n")

	sb.WriteString("## " + HeadingCommands + "\n\n")
	for i, cmd := range c.Commands {
		fmt.Fprintf(&sb, "%d. `%s`\n", i+1, cmd.Signature())
	}
	sb.WriteByte('\n')

	sb.WriteString("## " + HeadingSpecs + "\n\n")
	for _, spec := range c.Specs {
		fmt.Fprintf(&sb, "- **%s**: %s\n", spec.Label, spec.Value)
	}
	sb.WriteByte('\n')

	sb.WriteString("## " + HeadingAdvantages + "\n\n")
	for _, adv := range c.Advantages {
		fmt.Fprintf(&sb, "- %s\n", adv)
	}

	return sb.String()
}
