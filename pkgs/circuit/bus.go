package circuit

// Bus is a single named signal in an elaborated component: a current
// value, the IR node that drives it (nil for a pure input), and the set
// of buses that must be re-evaluated whenever this bus changes value
// (its influence list). Influence is the inverse of Assignment's
// Sensitivity, built once at elaboration time (pkgs/builder) and walked
// by the kernel's work-list on every propagation step (spec §4.5).
type Bus struct {
	ID         string
	Connection Connection
	Value      BusValue
	Assignment Node
	Influence  []*Bus
}

// Connection mirrors ast.Connection at the circuit level, so the
// builder can record why a bus has no Assignment (an input) versus one
// that is merely unassigned yet (a builder warning, spec §4.3).
type Connection int

const (
	Internal Connection = iota
	Input
	Output
)

func (c Connection) String() string {
	switch c {
	case Input:
		return "in"
	case Output:
		return "out"
	default:
		return "internal"
	}
}

// SetAssignment installs expr as the node driving b and registers b on
// the influence list of every bus expr reads, so that a future change
// to any of those buses schedules b for re-evaluation. Grounded on
// original_source/flote/frontend/ir/busses.py's set_assignment, which
// performs the same two-sided bookkeeping when wiring a driven signal.
func (b *Bus) SetAssignment(expr Node) {
	b.Assignment = expr
	for _, dep := range expr.Sensitivity() {
		dep.Influence = append(dep.Influence, b)
	}
}

// Component is an elaborated circuit: every bus it declares, indexed by
// name, plus the subset that are free inputs (no Assignment, driven
// only by a testbench). Buses is kept in declaration order because the
// kernel's work-list seeds its initial pass in that order (spec §4.5).
type Component struct {
	ID      string
	Buses   []*Bus
	ByID    map[string]*Bus
	Inputs  []*Bus
	SimTime uint64
	VCDLog  []VCDEvent
}

// VCDEvent records one bus's value at a given simulation tick, the unit
// the vcd package replays into a waveform dump.
type VCDEvent struct {
	Tick  uint64
	Bus   *Bus
	Value BusValue
}

// NewComponent builds an empty elaborated component ready to receive
// buses from the builder.
func NewComponent(id string) *Component {
	return &Component{
		ID:   id,
		ByID: make(map[string]*Bus),
	}
}

// AddBus appends a new bus to the component in declaration order and
// indexes it by name. It panics on a duplicate id — the builder is
// responsible for rejecting duplicate declarations before this is ever
// called, the same contract requireEqualWidth relies on for widths.
func (c *Component) AddBus(b *Bus) {
	if _, exists := c.ByID[b.ID]; exists {
		panic("circuit: duplicate bus id " + b.ID)
	}
	c.Buses = append(c.Buses, b)
	c.ByID[b.ID] = b
	if b.Connection == Input {
		c.Inputs = append(c.Inputs, b)
	}
}

// Bus looks up a bus by name, returning (nil, false) if none exists.
func (c *Component) Bus(id string) (*Bus, bool) {
	b, ok := c.ByID[id]
	return b, ok
}

// Snapshot returns the current value of every bus, keyed by id, in the
// form testbenches and the CLI render to the user. Supplemented from
// original_source/flooat/component.py's get_values, which exposes the
// same full-state read used both for interactive inspection and for
// seeding a VCD dump.
func (c *Component) Snapshot() map[string]string {
	out := make(map[string]string, len(c.Buses))
	for _, b := range c.Buses {
		out[b.ID] = b.Value.String()
	}
	return out
}
