package display

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmont/argopt/core"
	"github.com/tmont/argopt/errors"
	"github.com/tmont/argopt/internal/common"
)

// DefaultWidth is the line width used when the caller passes a
// non-positive width to Describe.
const DefaultWidth = 100

// Describe renders usage text for the contract: an invocation
// summary, an ARGUMENTS section for the collector field and an
// OPTIONS section for everything else, with descriptions aligned to
// a shared column and wrapped to the line width.
//
// Output is derived purely from the contract's metadata: given
// identical metadata, width and style, the text is byte-identical
// across calls. The executable name falls back to the base of
// os.Args[0] only when execName is empty.
func Describe(target any, execName string, width int, style core.Style) (string, error) {
	if !common.IsStructPtr(target) {
		return "", errors.NewParseError("invalid type: must pass pointer to struct")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if execName == "" {
		execName = filepath.Base(os.Args[0])
	}

	descs, err := core.DescribeFields(common.GetStructType(target))
	if err != nil {
		return "", err
	}

	var opts []core.Descriptor
	var collector *core.Descriptor
	for i := range descs {
		switch descs[i].Kind {
		case core.KindCollector:
			collector = &descs[i]
		case core.KindExcluded:
			// reachable only through its owning flag; not shown
		default:
			opts = append(opts, descs[i])
		}
	}

	var b strings.Builder
	for _, line := range Wrap(summaryLine(execName, opts, collector, style), width) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	col := descriptionColumn(opts, collector, style)

	if collector != nil {
		b.WriteString("\nARGUMENTS\n")
		writeEntry(&b, collector.Name, nil, collector.Desc, col, width)
	}

	if len(opts) > 0 {
		sort.Slice(opts, func(i, j int) bool { return opts[i].Name < opts[j].Name })
		b.WriteString("\nOPTIONS\n")
		for _, d := range opts {
			var aliases []string
			for _, alias := range d.Aliases {
				aliases = append(aliases, " "+style.DisplayPrefix()+alias)
			}
			writeEntry(&b, optionHeader(&d, style), aliases, d.Desc, col, width)
		}
	}

	return b.String(), nil
}

// summaryLine builds the one-line invocation summary: required
// options first, then optional ones, alphabetical within each group;
// optional options are bracket-wrapped, and the collector's display
// name closes the line.
func summaryLine(execName string, opts []core.Descriptor, collector *core.Descriptor, style core.Style) string {
	var required, optional []core.Descriptor
	for _, d := range opts {
		if d.Required {
			required = append(required, d)
		} else {
			optional = append(optional, d)
		}
	}
	sort.Slice(required, func(i, j int) bool { return required[i].Name < required[j].Name })
	sort.Slice(optional, func(i, j int) bool { return optional[i].Name < optional[j].Name })

	var b strings.Builder
	b.WriteString(execName)
	for _, d := range required {
		b.WriteString(" " + summaryRef(&d, style))
	}
	for _, d := range optional {
		b.WriteString(" [" + summaryRef(&d, style) + "]")
	}
	if collector != nil {
		b.WriteString(" " + collector.Name)
	}
	return b.String()
}

func summaryRef(d *core.Descriptor, style core.Style) string {
	ref := style.DisplayPrefix() + d.Name
	if d.ValueName != "" {
		ref += style.Separator() + d.ValueName
	}
	return ref
}

// optionHeader renders an option's full header for the OPTIONS
// section, including the [+|-] toggle marker for complex flags.
func optionHeader(d *core.Descriptor, style core.Style) string {
	h := style.DisplayPrefix() + d.Name
	if d.Kind == core.KindComplexFlag {
		h += "[+|-]"
	}
	if d.ValueName != "" {
		h += style.Separator() + d.ValueName
	}
	return h
}

// descriptionColumn computes the shared column at which every
// description starts: the widest header or indented alias across all
// shown fields, plus one space of padding. The collector's header is
// measured without a prefix.
func descriptionColumn(opts []core.Descriptor, collector *core.Descriptor, style core.Style) int {
	col := 0
	if collector != nil {
		col = len(collector.Name)
	}
	for _, d := range opts {
		if n := len(optionHeader(&d, style)); n > col {
			col = n
		}
		for _, alias := range d.Aliases {
			if n := 1 + len(style.DisplayPrefix()) + len(alias); n > col {
				col = n
			}
		}
	}
	return col + 1
}

// writeEntry emits one field's lines: the header padded to the
// shared column with the first description line beside it, aliases
// interleaved one per continuation line, and any remaining aliases
// on their own lines. A field with neither description nor aliases
// gets a blank line after its header.
func writeEntry(b *strings.Builder, header string, aliases []string, desc string, col, width int) {
	descLines := Wrap(desc, width-col)

	if len(descLines) == 0 && len(aliases) == 0 {
		b.WriteString(header)
		b.WriteString("\n\n")
		return
	}

	writeColumns(b, header, first(descLines), col)
	line := 1
	for _, alias := range aliases {
		right := ""
		if line < len(descLines) {
			right = descLines[line]
		}
		writeColumns(b, alias, right, col)
		line++
	}
	for ; line < len(descLines); line++ {
		writeColumns(b, "", descLines[line], col)
	}
}

func writeColumns(b *strings.Builder, left, right string, col int) {
	if right == "" {
		b.WriteString(left)
		b.WriteString("\n")
		return
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", col-len(left)))
	b.WriteString(right)
	b.WriteString("\n")
}

func first(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
