package structure

// baseComposite implements the child list and recursive equation flattening
// shared by every composite type. Flattening is computed on demand, never
// cached, so parameter or child changes after construction are reflected in
// the next solve.
type baseComposite struct {
	BaseStructure
	children []Structure
}

func (c *baseComposite) Children() []Structure {
	return c.children
}

// Add attaches another child after construction. This is how boundary
// conditions (Sources) are appended to an assembled circuit.
func (c *baseComposite) Add(s Structure) {
	c.children = append(c.children, s)
}

func (c *baseComposite) NumEquations() int {
	n := 0
	for _, child := range c.children {
		n += child.NumEquations()
	}
	return n
}

func (c *baseComposite) FieldEquations() []Equation {
	var eqs []Equation
	for _, child := range c.children {
		eqs = append(eqs, child.FieldEquations()...)
	}
	return eqs
}

// Circuit is a free-form composite for user assemblies: any mix of leaf and
// composite children wired together through shared pins.
type Circuit struct {
	baseComposite
}

func NewCircuit(name string) *Circuit {
	ckt := &Circuit{}
	ckt.BaseStructure = newBase(name, "Circuit", nil)
	return ckt
}

func (c *Circuit) Type() string { return "Circuit" }

// Pins returns the distinct pins of every child in order of first
// appearance.
func (c *Circuit) Pins() []*Pin {
	seen := make(map[int]bool)
	var pins []*Pin
	for _, child := range c.children {
		for _, p := range DistinctPins(child) {
			if !seen[p.ID()] {
				seen[p.ID()] = true
				pins = append(pins, p)
			}
		}
	}
	return pins
}

func (c *Circuit) NumPins() int {
	return len(c.Pins())
}

// DistinctPins walks the structure tree and returns every distinct pin in
// order of first appearance.
func DistinctPins(s Structure) []*Pin {
	seen := make(map[int]bool)
	var pins []*Pin
	var walk func(Structure)
	walk = func(s Structure) {
		for _, p := range s.Pins() {
			if !seen[p.ID()] {
				seen[p.ID()] = true
				pins = append(pins, p)
			}
		}
		if comp, ok := s.(Composite); ok {
			for _, child := range comp.Children() {
				walk(child)
			}
		}
	}
	walk(s)
	return pins
}
