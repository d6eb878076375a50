package content

// Accordion tracks which FAQ item is expanded. At most one is open.
type Accordion struct {
	open int
	size int
}

// NewAccordion returns a fully collapsed accordion of size items.
func NewAccordion(size int) *Accordion {
	return &Accordion{open: -1, size: size}
}

// Toggle opens item i, or closes it if it is already open. Out-of-range
// indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.size {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// Open returns the expanded item, if any.
func (a *Accordion) Open() (int, bool) {
	return a.open, a.open >= 0
}

// IsOpen reports whether item i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return a.open == i
}
