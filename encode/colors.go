package encode

import "github.com/fatih/color"

// Colors holds the palette used by Dump.
type Colors struct {
	Name  *color.Color
	Attr  *color.Color
	Value *color.Color
}

// NewColors returns the default palette.
func NewColors() *Colors {
	return &Colors{
		Name:  color.New(color.FgCyan),
		Attr:  color.New(color.FgYellow),
		Value: color.New(color.FgGreen),
	}
}

func (c *Colors) name(s string) string {
	if c == nil {
		return s
	}
	return c.Name.Sprint(s)
}

func (c *Colors) attr(s string) string {
	if c == nil {
		return s
	}
	return c.Attr.Sprint(s)
}

func (c *Colors) value(s string) string {
	if c == nil {
		return s
	}
	return c.Value.Sprint(s)
}
