package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/icarogabryel/flote/pkgs/testbench"
)

// runScript executes a small line-oriented stimulus script against tb.
// Each non-blank, non-comment line is one of:
//
//	update a=0 b=1
//	wait 10
//
// This format is this CLI's own invention (spec §1 excludes CLI/file-I/O
// detail), kept deliberately small: it exists only to give the
// testbench façade a command-line driver.
func runScript(tb *testbench.Testbench, script string) error {
	for i, rawLine := range strings.Split(script, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "update":
			stimulus, err := parseStimulus(fields[1:])
			if err != nil {
				return fmt.Errorf("script line %d: %w", lineNo, err)
			}
			if err := tb.Update(stimulus); err != nil {
				return fmt.Errorf("script line %d: %w", lineNo, err)
			}

		case "wait":
			if len(fields) != 2 {
				return fmt.Errorf("script line %d: wait requires exactly one tick count", lineNo)
			}
			ticks, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return fmt.Errorf("script line %d: invalid tick count %q", lineNo, fields[1])
			}
			if err := tb.Wait(ticks); err != nil {
				return fmt.Errorf("script line %d: %w", lineNo, err)
			}

		default:
			return fmt.Errorf("script line %d: unknown command %q", lineNo, fields[0])
		}
	}

	return nil
}

// parseStimulus parses a sequence of "id=bits" tokens into a stimulus map.
func parseStimulus(tokens []string) (map[string]string, error) {
	stimulus := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		id, bits, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("malformed stimulus token %q, expected id=bits", tok)
		}
		stimulus[id] = bits
	}
	return stimulus, nil
}
