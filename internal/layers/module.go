package layers

import "github.com/neuroscope/core/internal/tensor"

// Module is one node in a live model tree: a leaf layer, or a container
// holding ordered named children. The raw type tag is kept even when the
// kind is outside the catalogue so unknown layers still surface by name.
type Module struct {
	Name     string
	Type     string
	Attrs    map[string]any
	Children []*Module
	Weight   *tensor.Tensor
}

func NewModule(typeTag, name string) *Module {
	return &Module{Type: typeTag, Name: name, Attrs: map[string]any{}}
}

// Sequential builds a pure-sequential container whose direct children are
// chained pairwise during traversal.
func Sequential(name string, children ...*Module) *Module {
	m := NewModule(kindTags[KindSequential], name)
	m.Children = children
	return m
}

func (m *Module) Kind() LayerKind {
	return KindOf(m.Type)
}

// IsLeaf reports whether the module has no child sub-layers.
func (m *Module) IsLeaf() bool {
	return len(m.Children) == 0
}

func (m *Module) Add(children ...*Module) *Module {
	m.Children = append(m.Children, children...)
	return m
}

func (m *Module) SetAttr(key string, value any) *Module {
	m.Attrs[key] = value
	return m
}

func (m *Module) SetWeight(t tensor.Tensor) *Module {
	m.Weight = &t
	return m
}
