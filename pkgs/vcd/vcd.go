// Package vcd renders a circuit.Component's recorded value-change log
// as a Value Change Dump (spec §6): a header describing every bus,
// followed by one block per distinct simulation tick holding the
// changes recorded at that tick.
package vcd

import (
	"fmt"
	"os"
	"strings"

	"github.com/icarogabryel/flote/pkgs/circuit"
)

// Emit renders c's full VCD trace as text. The bus identifier doubles
// as its own VCD signal code — the component's namespace is already
// flat and collision-free, so there is no need for the shortened
// per-signal codes a larger netlist format would require.
func Emit(c *circuit.Component) string {
	var b strings.Builder

	b.WriteString("$timescale 1 ns $end\n")
	fmt.Fprintf(&b, "$scope module %s $end\n", c.ID)
	for _, bus := range c.Buses {
		fmt.Fprintf(&b, "$var wire %d %s %s $end\n", bus.Value.Width(), bus.ID, bus.ID)
	}
	b.WriteString("$upscope $end\n")
	b.WriteString("$enddefinitions $end\n")

	for _, tick := range orderedTicks(c.VCDLog) {
		fmt.Fprintf(&b, "#%d\n", tick)
		for _, ev := range c.VCDLog {
			if ev.Tick == tick {
				fmt.Fprintf(&b, "b%s %s\n", ev.Value.String(), ev.Bus.ID)
			}
		}
	}

	return b.String()
}

// orderedTicks returns the distinct ticks present in log, in the order
// they first appear — log is already append-ordered by sim_time, so no
// sort is needed, only deduplication.
func orderedTicks(log []circuit.VCDEvent) []uint64 {
	seen := make(map[uint64]bool)
	var ticks []uint64
	for _, ev := range log {
		if !seen[ev.Tick] {
			seen[ev.Tick] = true
			ticks = append(ticks, ev.Tick)
		}
	}
	return ticks
}

// Save writes c's VCD trace to path.
func Save(c *circuit.Component, path string) error {
	return os.WriteFile(path, []byte(Emit(c)), 0o644)
}
