package model

// Field is one projected user attribute.
type Field struct {
	Name  string
	Value interface{}
}

// Projection is an ordered subset of user attributes. Order follows the
// repository's column allow-list, not the caller's request, so the same
// field set always comes back in the same shape.
type Projection []Field

func (p Projection) Get(name string) (interface{}, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
