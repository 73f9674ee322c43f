// Package message holds the catalog of failure-message templates used by fluentcheck.
//
// Each predicate failure maps to exactly one [TemplateID]. A [Template] names its placeholder
// slots in order and is rendered by binding values to those slots through a [Representation].
// Rendering is deterministic: the same values always produce the same text, independent of
// locale, time zone or environment.
package message

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// TemplateID selects the template that renders a given failure.
type TemplateID string

// Template is an immutable failure-message template.
type Template struct {
	id     TemplateID
	slots  []string
	format string
	tmpl   *template.Template
}

// NewTemplate parses format, a text/template body referring to each slot as {{.slot}}.
func NewTemplate(id TemplateID, format string, slots ...string) (*Template, error) {
	if id == "" {
		return nil, fmt.Errorf("template id must not be empty")
	}
	for _, slot := range slots {
		if !strings.Contains(format, "{{."+slot+"}}") {
			return nil, fmt.Errorf("template %q: slot %q is not referenced", id, slot)
		}
	}

	tmpl, err := template.New(string(id)).Option("missingkey=error").Parse(format)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", id, err)
	}

	return &Template{
		id:     id,
		slots:  append([]string(nil), slots...),
		format: format,
		tmpl:   tmpl,
	}, nil
}

// MustTemplate is like NewTemplate but panics on error. It is meant for package-level tables.
func MustTemplate(id TemplateID, format string, slots ...string) *Template {
	t, err := NewTemplate(id, format, slots...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) ID() TemplateID { return t.id }
func (t *Template) Format() string { return t.format }
func (t *Template) Slots() []string { return append([]string(nil), t.slots...) }

// Render binds values to the slots in order.
func (t *Template) Render(r Representation, values ...any) (string, error) {
	if len(values) != len(t.slots) {
		return "", fmt.Errorf("template %q: expected %d values, got %d", t.id, len(t.slots), len(values))
	}
	if r == nil {
		r = Standard
	}

	data := make(map[string]string, len(t.slots))
	for i, slot := range t.slots {
		data[slot] = r.Format(values[i])
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template %q: %w", t.id, err)
	}
	return buf.String(), nil
}

// Catalog is an immutable registry of templates keyed by id.
type Catalog struct {
	templates map[TemplateID]*Template
}

// NewCatalog builds a catalog, rejecting duplicate ids.
func NewCatalog(templates ...*Template) (*Catalog, error) {
	c := &Catalog{templates: make(map[TemplateID]*Template, len(templates))}
	for _, t := range templates {
		if t == nil {
			return nil, fmt.Errorf("nil template")
		}
		if _, dup := c.templates[t.id]; dup {
			return nil, fmt.Errorf("duplicate template %q", t.id)
		}
		c.templates[t.id] = t
	}
	return c, nil
}

// With returns a new catalog with the given templates added or replaced. The receiver is left
// untouched.
func (c *Catalog) With(templates ...*Template) *Catalog {
	next := &Catalog{templates: make(map[TemplateID]*Template, len(c.templates)+len(templates))}
	for id, t := range c.templates {
		next.templates[id] = t
	}
	for _, t := range templates {
		if t != nil {
			next.templates[t.id] = t
		}
	}
	return next
}

// Lookup returns the template registered under id.
func (c *Catalog) Lookup(id TemplateID) (*Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// IDs returns the registered ids in sorted order.
func (c *Catalog) IDs() []TemplateID {
	ids := make([]TemplateID, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Render renders the template registered under id.
func (c *Catalog) Render(id TemplateID, r Representation, values ...any) (string, error) {
	t, ok := c.Lookup(id)
	if !ok {
		return "", fmt.Errorf("unknown template %q", id)
	}
	return t.Render(r, values...)
}
