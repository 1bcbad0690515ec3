package vcd

import (
	"strings"
	"testing"

	"github.com/icarogabryel/flote/pkgs/circuit"
)

func TestEmitHeaderAndScope(t *testing.T) {
	c := circuit.NewComponent("half_adder")
	c.AddBus(&circuit.Bus{ID: "a", Value: circuit.BusValue{false}})
	c.AddBus(&circuit.Bus{ID: "s", Value: circuit.BusValue{false}})

	out := Emit(c)

	for _, want := range []string{
		"$timescale 1 ns $end\n",
		"$scope module half_adder $end\n",
		"$var wire 1 a a $end\n",
		"$var wire 1 s s $end\n",
		"$upscope $end\n",
		"$enddefinitions $end\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, out)
		}
	}
}

func TestEmitTickOrderingAndValues(t *testing.T) {
	c := circuit.NewComponent("top")
	a := &circuit.Bus{ID: "a", Value: circuit.BusValue{false}}
	b := &circuit.Bus{ID: "b", Value: circuit.BusValue{false}}
	c.AddBus(a)
	c.AddBus(b)

	c.VCDLog = []circuit.VCDEvent{
		{Tick: 0, Bus: a, Value: circuit.BusValue{false}},
		{Tick: 0, Bus: b, Value: circuit.BusValue{false}},
		{Tick: 10, Bus: a, Value: circuit.BusValue{true}},
	}

	out := Emit(c)

	tick0 := strings.Index(out, "#0\n")
	tick10 := strings.Index(out, "#10\n")
	if tick0 == -1 || tick10 == -1 || tick0 > tick10 {
		t.Fatalf("expected #0 before #10 in:\n%s", out)
	}
	if !strings.Contains(out, "b0 a\n") || !strings.Contains(out, "b0 b\n") {
		t.Errorf("expected initial values at tick 0:\n%s", out)
	}
	if !strings.Contains(out, "b1 a\n") {
		t.Errorf("expected the tick 10 change for a:\n%s", out)
	}
}

func TestEmitNoTicksProducesOnlyHeader(t *testing.T) {
	c := circuit.NewComponent("empty")
	out := Emit(c)
	if strings.Contains(out, "#") {
		t.Errorf("expected no tick blocks with an empty VCD log:\n%s", out)
	}
}
