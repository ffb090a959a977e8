package structure

// Pin is one physical port of a structure. Two structures are connected by
// referencing the same *Pin; the integer identity is the only key used to
// locate the pin's column in the assembled system.
type Pin struct {
	id int
}

func (p *Pin) ID() int {
	return p.id
}

// PinAllocator hands out sequential pin identities for one circuit build.
// It is not safe to share across concurrent builds; give each build its own
// allocator, or Reset before starting an independent one so identities
// start from zero and double as dense column indices.
type PinAllocator struct {
	next int
}

func NewPinAllocator() *PinAllocator {
	return &PinAllocator{}
}

func (a *PinAllocator) Allocate() *Pin {
	p := &Pin{id: a.next}
	a.next++
	return p
}

func (a *PinAllocator) AllocateN(n int) []*Pin {
	pins := make([]*Pin, n)
	for i := range pins {
		pins[i] = a.Allocate()
	}
	return pins
}

func (a *PinAllocator) Reset() {
	a.next = 0
}

// Count returns how many pins have been handed out since the last Reset.
func (a *PinAllocator) Count() int {
	return a.next
}
