// Package page defines the rich page documents a pagination session
// displays.
//
// A Document is an embed-like unit of pre-rendered content with an
// addressable footer. Sessions stamp the footer with the current position
// when page numbering is enabled; everything else belongs to the caller.
package page

// Field is a titled block of content within a Document.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Document is a single pre-rendered page. The zero value is usable.
//
// Footer is overwritten on every render when the owning session has page
// numbering enabled, so callers should not rely on a footer they set
// surviving navigation.
type Document struct {
	Title       string
	Description string
	Color       uint32
	Fields      []Field
	Footer      string
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// SetFooter replaces the footer text. Repeated calls overwrite rather than
// accumulate, which keeps re-rendering the same page idempotent.
func (d *Document) SetFooter(text string) {
	d.Footer = text
}

// AddField appends a titled content block.
func (d *Document) AddField(name, value string) {
	d.Fields = append(d.Fields, Field{Name: name, Value: value})
}

// Clone returns a deep copy of the document. Sinks that record history use
// it so later footer stamps do not rewrite what they captured.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	copied := *d
	copied.Fields = append([]Field(nil), d.Fields...)
	return &copied
}
