package catalog

import (
	"fmt"
)

// Catalog is an immutable, ordered collection of tool descriptors with
// a name index for constant-time resolution.
type Catalog struct {
	tools []ToolDescriptor
	index map[string]int
}

// New builds a catalog from descriptors. Descriptor names must be
// unique; a duplicate is a programming error in the tool data.
func New(tools []ToolDescriptor) (*Catalog, error) {
	index := make(map[string]int, len(tools))
	for i, t := range tools {
		if t.Name == "" {
			return nil, fmt.Errorf("tool at position %d has no name", i)
		}
		if _, dup := index[t.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name: %s", t.Name)
		}
		if t.Execution == nil {
			return nil, fmt.Errorf("tool %s has no execution strategy", t.Name)
		}
		index[t.Name] = i
	}
	return &Catalog{tools: tools, index: index}, nil
}

// Default returns the built-in catalog of all Lark OpenAPI tools.
func Default() *Catalog {
	c, err := New(allTools())
	if err != nil {
		// The built-in tool data is static; a failure here means the
		// data tables themselves are broken.
		panic(err)
	}
	return c
}

// Len returns the number of tools in the catalog.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// All returns the descriptors in catalog order. The returned slice must
// not be modified.
func (c *Catalog) All() []ToolDescriptor {
	return c.tools
}

// Find resolves a tool by its canonical name.
func (c *Catalog) Find(name string) (*ToolDescriptor, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return &c.tools[i], true
}

// FindCased resolves a tool by a name written in any supported case
// style. Lookup normalizes to the canonical snake_case name first.
func (c *Catalog) FindCased(name string) (*ToolDescriptor, bool) {
	if t, ok := c.Find(name); ok {
		return t, true
	}
	return c.Find(ToSnake(name))
}
