// Package printer renders encoded tagged values for humans and tools.
//
// Three formats are supported: an indented text dump that shows tags and
// node ids, JSON for tooling, and XML for node trees.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/xdmkit/xdm"
)

const (
	DefaultIndentSize     = 2
	DefaultMaxDepth       = 0
	DefaultMaxStringBytes = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented dump with tags and node ids.
	FormatText Format = "text"

	// FormatJSON outputs one JSON document per value.
	FormatJSON Format = "json"

	// FormatXML serialises node trees as XML; atomic values are written as
	// their lexical form.
	FormatXML Format = "xml"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, xml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text and xml).
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep sequences and nodes are expanded (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowNodeIDs includes local node ids in text output.
	// Default: true
	ShowNodeIDs bool

	// MaxStringBytes truncates long strings in text output. 0 disables.
	// Default: 64
	MaxStringBytes int

	// Validate checks the region with xdm.Validate before reading it.
	// Default: true
	Validate bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		ShowNodeIDs:    true,
		MaxStringBytes: DefaultMaxStringBytes,
		Validate:       true,
	}
}

// Printer writes formatted values to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(out.Bytes())
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print renders one encoded tagged value.
func (p *Printer) Print(b []byte) error {
	if p.opts.Validate {
		if err := xdm.Validate(b); err != nil {
			return fmt.Errorf("printer: %w", err)
		}
	}
	var tv xdm.TaggedValue
	tv.SetBytes(b)
	return p.PrintTaggedValue(&tv)
}

// PrintTaggedValue renders a value that is already anchored. The region is
// not validated.
func (p *Printer) PrintTaggedValue(tv *xdm.TaggedValue) error {
	it := decode(tv, 0, p.opts.MaxDepth)

	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(it)
	case FormatXML:
		return p.printXML(it)
	default:
		return p.printText(it, 0)
	}
}
