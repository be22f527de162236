// Package action defines the fixed catalog of memory-reclaim operations and
// the dashboard's selection cursor over it.
//
// Every Action maps to exactly one hotkey, one RAMMap command-line switch
// and one stable display name. The display name doubles as the persisted
// form in the config file, so Parse and String must stay exact inverses.
package action

// Action is one of the memory-reclaim operations RAMMap can perform.
type Action int

const (
	EmptyWorkingSets Action = iota
	EmptySystemWorkingSets
	EmptyModifiedPageLists
	EmptyStandbyList
	EmptyPriorityZeroStandbyList
)

// Count is the number of actions in the catalog.
const Count = 5

// Default is the action used when nothing valid is configured.
const Default = EmptyWorkingSets

type entry struct {
	key       rune
	parameter string
	name      string
}

// catalog is indexed by Action; order is the on-screen order.
var catalog = [Count]entry{
	EmptyWorkingSets:             {key: '1', parameter: "-Ew", name: "Empty Working Sets"},
	EmptySystemWorkingSets:       {key: '2', parameter: "-Es", name: "Empty System Working Sets"},
	EmptyModifiedPageLists:       {key: '3', parameter: "-Em", name: "Empty Modified Page Lists"},
	EmptyStandbyList:             {key: '4', parameter: "-Et", name: "Empty Standby List"},
	EmptyPriorityZeroStandbyList: {key: '5', parameter: "-E0", name: "Empty Priority 0 Standby List"},
}

// All returns every action in catalog order.
func All() []Action {
	out := make([]Action, Count)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Valid reports whether a is inside the catalog.
func (a Action) Valid() bool {
	return a >= 0 && int(a) < Count
}

// String returns the display name, which is also the persisted name.
func (a Action) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return catalog[a].name
}

// Key returns the hotkey that dispatches this action.
func (a Action) Key() rune {
	if !a.Valid() {
		return 0
	}
	return catalog[a].key
}

// Parameter returns the RAMMap command-line switch for this action.
func (a Action) Parameter() string {
	if !a.Valid() {
		return ""
	}
	return catalog[a].parameter
}

// Index returns the position of the action in the catalog.
func (a Action) Index() int {
	return int(a)
}

// Next cycles to the following action, wrapping from the last to the first.
func (a Action) Next() Action {
	if !a.Valid() {
		return Default
	}
	return Action((int(a) + 1) % Count)
}

// FromIndex resolves a catalog position.
func FromIndex(i int) (Action, bool) {
	a := Action(i)
	if !a.Valid() {
		return Default, false
	}
	return a, true
}

// FromKey resolves a hotkey. Unmapped characters return false.
func FromKey(r rune) (Action, bool) {
	for i, e := range catalog {
		if e.key == r {
			return Action(i), true
		}
	}
	return Default, false
}

// Parse resolves a persisted display name. Matching is exact; an unknown
// name returns false rather than falling back silently.
func Parse(name string) (Action, bool) {
	for i, e := range catalog {
		if e.name == name {
			return Action(i), true
		}
	}
	return Default, false
}

// Names returns the display names in catalog order.
func Names() []string {
	out := make([]string, Count)
	for i, e := range catalog {
		out[i] = e.name
	}
	return out
}
