package kernel

import (
	"testing"

	"github.com/icarogabryel/flote/pkgs/circuit"
	flerrors "github.com/icarogabryel/flote/pkgs/errors"
)

func halfAdder() *circuit.Component {
	c := circuit.NewComponent("half_adder")
	a := &circuit.Bus{ID: "a", Connection: circuit.Input, Value: circuit.BusValue{false}}
	b := &circuit.Bus{ID: "b", Connection: circuit.Input, Value: circuit.BusValue{false}}
	s := &circuit.Bus{ID: "s", Connection: circuit.Output, Value: circuit.BusValue{false}}
	cy := &circuit.Bus{ID: "c", Connection: circuit.Output, Value: circuit.BusValue{false}}

	c.AddBus(a)
	c.AddBus(b)
	c.AddBus(s)
	c.AddBus(cy)

	s.SetAssignment(circuit.Binary{Kind: circuit.OpXor, Left: circuit.BusRef{Bus: a}, Right: circuit.BusRef{Bus: b}})
	cy.SetAssignment(circuit.Binary{Kind: circuit.OpAnd, Left: circuit.BusRef{Bus: a}, Right: circuit.BusRef{Bus: b}})

	return c
}

func TestStabilizeHalfAdder(t *testing.T) {
	c := halfAdder()
	a, _ := c.Bus("a")
	b, _ := c.Bus("b")
	a.Value = circuit.BusValue{true}
	b.Value = circuit.BusValue{true}

	if err := Stabilize(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, _ := c.Bus("s")
	cy, _ := c.Bus("c")
	if got, want := s.Value.String(), "0"; got != want {
		t.Errorf("s = %q, want %q", got, want)
	}
	if got, want := cy.Value.String(), "1"; got != want {
		t.Errorf("c = %q, want %q", got, want)
	}
}

// rsLatch builds the classic NOR-gate feedback latch: two cross-coupled
// buses whose mutual influence list exercises the work-list's cycle
// handling (spec S3).
func rsLatch() (c *circuit.Component, set, rst, q, notQ *circuit.Bus) {
	c = circuit.NewComponent("rs_latch")
	set = &circuit.Bus{ID: "set", Connection: circuit.Input, Value: circuit.BusValue{false}}
	rst = &circuit.Bus{ID: "rst", Connection: circuit.Input, Value: circuit.BusValue{false}}
	q = &circuit.Bus{ID: "q", Connection: circuit.Output, Value: circuit.BusValue{false}}
	notQ = &circuit.Bus{ID: "not_q", Connection: circuit.Output, Value: circuit.BusValue{true}}

	c.AddBus(set)
	c.AddBus(rst)
	c.AddBus(q)
	c.AddBus(notQ)

	q.SetAssignment(circuit.Binary{Kind: circuit.OpNor, Left: circuit.BusRef{Bus: rst}, Right: circuit.BusRef{Bus: notQ}})
	notQ.SetAssignment(circuit.Binary{Kind: circuit.OpNor, Left: circuit.BusRef{Bus: set}, Right: circuit.BusRef{Bus: q}})

	return c, set, rst, q, notQ
}

func TestStabilizeRSLatchSet(t *testing.T) {
	c, set, _, q, notQ := rsLatch()
	set.Value = circuit.BusValue{true}

	if err := Stabilize(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := q.Value.String(), "1"; got != want {
		t.Errorf("q = %q, want %q", got, want)
	}
	if got, want := notQ.Value.String(), "0"; got != want {
		t.Errorf("not_q = %q, want %q", got, want)
	}
}

// oscillator is a single inverter feeding back on itself: it never
// reaches a fixed point, and must trip the iteration cap.
func oscillator() *circuit.Component {
	c := circuit.NewComponent("oscillator")
	x := &circuit.Bus{ID: "x", Connection: circuit.Internal, Value: circuit.BusValue{false}}
	c.AddBus(x)
	x.SetAssignment(circuit.Not{Expr: circuit.BusRef{Bus: x}})
	return c
}

func TestStabilizeOscillatorExceedsCap(t *testing.T) {
	c := oscillator()

	err := Stabilize(c, WithIterationCap(50))
	if err == nil {
		t.Fatalf("expected a SimulationError, got none")
	}
	if !flerrors.Is(err, flerrors.KindSimulation) {
		t.Fatalf("expected KindSimulation, got %v", err)
	}
}

func TestStabilizeAcyclicConverges(t *testing.T) {
	c := halfAdder()
	if err := Stabilize(c); err != nil {
		t.Fatalf("unexpected error on the all-zero fixed point: %v", err)
	}
}
