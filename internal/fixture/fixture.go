// Package fixture encodes values described in YAML.
//
// Each YAML document holds one value. A value is a mapping with exactly one
// kind key:
//
//	sequence:
//	  - integer: 42
//	  - string: hello
//	  - tree:
//	      ids: true
//	      root:
//	        element: a
//	        id: 1
//	        attributes:
//	          - {attribute: x, value: "1", id: 2}
//	        children:
//	          - {text: hi, id: 3}
//
// Node trees are encoded with builder.TreeBuilder.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm/builder"
)

// ErrInvalid is returned for fixtures that do not describe a value.
var ErrInvalid = errors.New("fixture: invalid value")

// Value describes one tagged value. Exactly one field must be set.
type Value struct {
	String        *string  `yaml:"string"`
	UntypedAtomic *string  `yaml:"untypedAtomic"`
	AnyURI        *string  `yaml:"anyURI"`
	Boolean       *bool    `yaml:"boolean"`
	Decimal       *string  `yaml:"decimal"`
	Integer       *int64   `yaml:"integer"`
	Long          *int64   `yaml:"long"`
	Int           *int32   `yaml:"int"`
	Short         *int16   `yaml:"short"`
	Byte          *int8    `yaml:"byte"`
	Float         *float32 `yaml:"float"`
	Double        *float64 `yaml:"double"`
	Sequence      *[]Value `yaml:"sequence"`
	Tree          *Tree    `yaml:"tree"`
}

// Tree describes a node tree.
type Tree struct {
	// IDs writes local node ids into the tree.
	IDs bool `yaml:"ids"`
	// Number, when set, renumbers every node in document order starting at
	// this id. Implies IDs.
	Number *int32 `yaml:"number"`
	Root   Node   `yaml:"root"`
}

// Node describes one node. The kind key (document, element, attribute,
// text, comment, pi) selects the kind; the other fields apply to it.
type Node struct {
	Document  *[]Node `yaml:"document"`
	Element   *string `yaml:"element"`
	Attribute *string `yaml:"attribute"`
	Text      *string `yaml:"text"`
	Comment   *string `yaml:"comment"`
	PI        *string `yaml:"pi"`

	ID         int32       `yaml:"id"`
	Prefix     string      `yaml:"prefix"`
	URI        string      `yaml:"uri"`
	Value      string      `yaml:"value"`
	Data       string      `yaml:"data"`
	Namespaces []Namespace `yaml:"namespaces"`
	Attributes []Node      `yaml:"attributes"`
	Children   []Node      `yaml:"children"`
}

// Namespace is a namespace binding on an element.
type Namespace struct {
	Prefix string `yaml:"prefix"`
	URI    string `yaml:"uri"`
}

// Options controls fixture loading.
type Options struct {
	// Charset of the YAML input: "" or "utf-8", "latin1" (ISO 8859-1), or
	// "windows-1252".
	// Default: "utf-8"
	Charset string
}

// DefaultOptions returns the default loading options.
func DefaultOptions() Options {
	return Options{Charset: "utf-8"}
}

func decoderFor(charset string) (transform.Transformer, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("fixture: unsupported charset %q", charset)
}

// Parse reads every YAML document from r.
func Parse(r io.Reader, opts Options) ([]Value, error) {
	t, err := decoderFor(opts.Charset)
	if err != nil {
		return nil, err
	}
	if t != nil {
		r = transform.NewReader(r, t)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var values []Value
	for {
		var v Value
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fixture: document %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Load parses r and encodes every document. The returned slices are
// independent copies.
func Load(r io.Reader, opts Options) ([][]byte, error) {
	values, err := Parse(r, opts)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(values))
	var s builder.ValueStorage
	for i := range values {
		s.Reset()
		if err := Encode(&s, &values[i]); err != nil {
			return nil, fmt.Errorf("fixture: document %d: %w", i, err)
		}
		out[i] = s.CopyBytes()
	}
	return out, nil
}

// LoadFile loads the fixture file at path.
func LoadFile(path string, opts Options) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data), opts)
}

// LoadString loads a UTF-8 fixture held in memory.
func LoadString(src string) ([][]byte, error) {
	return Load(strings.NewReader(src), DefaultOptions())
}

// Encode appends the encoding of v to dst.
func Encode(dst *builder.ValueStorage, v *Value) error {
	if n := v.kinds(); n != 1 {
		return fmt.Errorf("%w: %d kinds set, want 1", ErrInvalid, n)
	}

	switch {
	case v.String != nil:
		return builder.PutString(dst, format.TagString, *v.String)
	case v.UntypedAtomic != nil:
		return builder.PutString(dst, format.TagUntypedAtomic, *v.UntypedAtomic)
	case v.AnyURI != nil:
		return builder.PutString(dst, format.TagAnyURI, *v.AnyURI)
	case v.Boolean != nil:
		builder.PutBoolean(dst, *v.Boolean)
	case v.Decimal != nil:
		scale, unscaled, err := parseDecimal(*v.Decimal)
		if err != nil {
			return err
		}
		builder.PutDecimal(dst, scale, unscaled)
	case v.Integer != nil:
		builder.PutInteger(dst, *v.Integer)
	case v.Long != nil:
		builder.PutLong(dst, *v.Long)
	case v.Int != nil:
		builder.PutInt(dst, *v.Int)
	case v.Short != nil:
		builder.PutShort(dst, *v.Short)
	case v.Byte != nil:
		builder.PutByte(dst, *v.Byte)
	case v.Float != nil:
		builder.PutFloat(dst, *v.Float)
	case v.Double != nil:
		builder.PutDouble(dst, *v.Double)
	case v.Sequence != nil:
		return encodeSequence(dst, *v.Sequence)
	case v.Tree != nil:
		return encodeTree(dst, v.Tree)
	}
	return nil
}

func (v *Value) kinds() int {
	n := 0
	for _, set := range []bool{
		v.String != nil, v.UntypedAtomic != nil, v.AnyURI != nil, v.Boolean != nil,
		v.Decimal != nil, v.Integer != nil, v.Long != nil, v.Int != nil,
		v.Short != nil, v.Byte != nil, v.Float != nil, v.Double != nil,
		v.Sequence != nil, v.Tree != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func encodeSequence(dst *builder.ValueStorage, items []Value) error {
	var sb builder.SequenceBuilder
	var tmp builder.ValueStorage
	sb.Reset(dst)
	for i := range items {
		tmp.Reset()
		if err := Encode(&tmp, &items[i]); err != nil {
			return fmt.Errorf("sequence entry %d: %w", i, err)
		}
		if err := sb.AddBytes(tmp.Bytes()); err != nil {
			return err
		}
	}
	return sb.Finish()
}

func encodeTree(dst *builder.ValueStorage, t *Tree) error {
	root, err := t.Root.build()
	if err != nil {
		return err
	}
	ids := t.IDs
	if t.Number != nil {
		builder.AssignIDs(root, *t.Number)
		ids = true
	}
	return builder.NewTreeBuilder(builder.TreeOptions{NodeIDs: ids}).Build(dst, root)
}

func (n *Node) build() (*builder.Node, error) {
	out := &builder.Node{ID: n.ID}
	kinds := 0
	if n.Document != nil {
		kinds++
		out.Kind = format.TagDocumentNode
	}
	if n.Element != nil {
		kinds++
		out.Kind = format.TagElementNode
		out.Name = builder.QName{Prefix: n.Prefix, URI: n.URI, Local: *n.Element}
	}
	if n.Attribute != nil {
		kinds++
		out.Kind = format.TagAttributeNode
		out.Name = builder.QName{Prefix: n.Prefix, URI: n.URI, Local: *n.Attribute}
		out.Value = n.Value
	}
	if n.Text != nil {
		kinds++
		out.Kind = format.TagTextNode
		out.Value = *n.Text
	}
	if n.Comment != nil {
		kinds++
		out.Kind = format.TagCommentNode
		out.Value = *n.Comment
	}
	if n.PI != nil {
		kinds++
		out.Kind = format.TagPINode
		out.Target = *n.PI
		out.Value = n.Data
	}
	if kinds != 1 {
		return nil, fmt.Errorf("%w: node sets %d kinds, want 1", ErrInvalid, kinds)
	}

	for _, ns := range n.Namespaces {
		out.Namespaces = append(out.Namespaces, builder.Namespace{Prefix: ns.Prefix, URI: ns.URI})
	}
	children := n.Children
	if n.Document != nil {
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%w: document sets both its child list and children", ErrInvalid)
		}
		children = *n.Document
	}
	for i := range n.Attributes {
		a, err := n.Attributes[i].build()
		if err != nil {
			return nil, err
		}
		out.Attributes = append(out.Attributes, a)
	}
	for i := range children {
		c, err := children[i].build()
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, c)
	}
	return out, nil
}

// parseDecimal splits a decimal literal into scale and unscaled value.
func parseDecimal(s string) (uint8, int64, error) {
	s = strings.TrimSpace(s)
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) > 255 {
		return 0, 0, fmt.Errorf("%w: decimal %q has too many fraction digits", ErrInvalid, s)
	}
	unscaled, err := strconv.ParseInt(intPart+frac, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: decimal %q: %v", ErrInvalid, s, err)
	}
	return uint8(len(frac)), unscaled, nil
}
