package formatter

// Attr is a single XML attribute. Attributes keep insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the document tree: a qualified tag, ordered attributes,
// ordered children and optional text. Leaves carry Text, branches carry Children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New creates a branch element with the given children in order.
func New(tag string, children ...*Element) *Element {
	return &Element{Tag: tag, Children: children}
}

// Leaf creates a text element.
func Leaf(tag, text string) *Element {
	return &Element{Tag: tag, Text: text}
}

// WithAttrs returns e after appending attrs in order.
func (e *Element) WithAttrs(attrs ...Attr) *Element {
	e.Attrs = append(e.Attrs, attrs...)
	return e
}

// Append adds children to e, skipping nil entries so optional elements can be
// passed inline and simply disappear when absent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Optional returns a leaf when text is non-empty and nil otherwise.
func Optional(tag, text string) *Element {
	if text == "" {
		return nil
	}
	return Leaf(tag, text)
}

// Path walks direct children by tag, e.g. root.Path("FatturaElettronicaBody", "DatiPagamento").
func (e *Element) Path(tags ...string) *Element {
	cur := e
	for _, tag := range tags {
		var next *Element
		for _, c := range cur.Children {
			if c.Tag == tag {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
