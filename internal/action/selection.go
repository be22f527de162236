package action

// Selection is the highlighted row in the action list. Movement saturates
// at both ends; it never wraps.
type Selection struct {
	index int
}

// Index returns the highlighted catalog position.
func (s Selection) Index() int {
	return s.index
}

// Action returns the highlighted action.
func (s Selection) Action() Action {
	return Action(s.index)
}

// Up moves the cursor one row up, stopping at the first row.
func (s *Selection) Up() {
	if s.index > 0 {
		s.index--
	}
}

// Down moves the cursor one row down, stopping at the last row.
func (s *Selection) Down() {
	if s.index < Count-1 {
		s.index++
	}
}
