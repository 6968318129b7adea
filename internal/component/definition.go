package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// Definition binds a variant table to the element it styles.
type Definition struct {
	Name        string
	Element     string
	Description string
	Table       *variant.Table
}

// Define builds a styled component definition. The table name is used when
// name is empty.
func Define(name, element string, table *variant.Table) *Definition {
	if name == "" && table != nil {
		name = table.Name()
	}
	return &Definition{Name: name, Element: element, Table: table}
}

// Describe sets a one-line description shown in listings.
func (d *Definition) Describe(text string) *Definition {
	d.Description = text
	return d
}

// Classes resolves the class attribute for sel and override.
func (d *Definition) Classes(sel variant.Selection, override string) (string, error) {
	return d.Table.ResolveString(sel, override)
}

// Props are the per-call inputs of a rendered component.
type Props struct {
	Selection variant.Selection
	Class     string
	Attrs     templ.Attributes
}

var voidElements = map[string]struct{}{
	"area": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {}, "input": {}, "link": {}, "meta": {}, "source": {}, "wbr": {},
}

// Render resolves props and returns a templ component writing the element
// with its class attribute, extra attributes and children. Resolution errors
// are returned before anything is written.
func (d *Definition) Render(props Props, children ...templ.Component) (templ.Component, error) {
	classes, err := d.Classes(props.Selection, props.Class)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", d.Name, err)
	}

	element := d.Element
	if element == "" {
		element = "div"
	}
	attrs := elementAttributes(props.Attrs)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := "<" + element
		if classes != "" {
			open += ` class="` + templ.EscapeString(classes) + `"`
		}
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}

		if _, void := voidElements[element]; void {
			return nil
		}

		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+element+">")
		return err
	}), nil
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// elementAttributes drops class, which Render owns.
func elementAttributes(attrs templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(attrs))
	for k, v := range attrs {
		if k != "class" {
			out[k] = v
		}
	}
	return out
}
