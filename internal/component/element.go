package component

// ClassAttribute is the source markup attribute holding class tokens.
const ClassAttribute = "class"

// Attribute is a single name/value pair, kept in source order.
type Attribute struct {
	Name  string
	Value string
}

// Element is the matcher's view of one markup element: its tag, the class
// tokens it carries in source order, and its attributes in source order.
type Element struct {
	Tag        string
	Classes    ClassSet
	Attributes []Attribute
}

// NewElement builds an Element, deriving Classes from the class attribute.
func NewElement(tag string, attrs []Attribute) Element {
	el := Element{Tag: tag, Attributes: attrs}
	if value, ok := el.Attr(ClassAttribute); ok {
		el.Classes = ParseClassSet(value)
	}
	return el
}

// Attr returns the value of the first attribute called name.
func (e Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HasClassAttr reports whether the element carries a class attribute at all.
func (e Element) HasClassAttr() bool {
	_, ok := e.Attr(ClassAttribute)
	return ok
}
