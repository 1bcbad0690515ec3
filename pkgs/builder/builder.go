// Package builder implements the semantic pass that turns a parsed
// ast.Module into an elaborated circuit.Component (spec §4.3): the
// module rule, per-component declaration and wiring passes, width
// inference, sensitivity/influence construction, and the validation
// pass that warns (never fails) on unassigned or unread buses.
package builder

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/icarogabryel/flote/pkgs/ast"
	"github.com/icarogabryel/flote/pkgs/circuit"
	flerrors "github.com/icarogabryel/flote/pkgs/errors"
)

// busSymbol tracks the bookkeeping the declaration and wiring passes
// need beyond what circuit.Bus itself stores, mirroring BusSymbol in
// original_source/flote/elaboration/builder.py.
type busSymbol struct {
	conn       ast.Connection
	isAssigned bool
	isRead     bool
	line       int
}

// builder holds the per-module state threaded through every component
// visit. One builder is used for an entire Build call.
type builder struct {
	symbols map[string]*busSymbol // bus id -> symbol, scoped to the component currently being visited
}

// Build elaborates mod into a single circuit.Component: the module's
// entry component if mod has exactly one, or its sole `main` component
// when mod declares several (spec §4.3 step 1).
func Build(mod *ast.Module) (*circuit.Component, error) {
	if len(mod.Components) == 0 {
		return nil, flerrors.NewSemanticalErrorNoLine("module declares no components")
	}

	b := &builder{}

	if len(mod.Components) == 1 {
		return b.visitComponent(&mod.Components[0])
	}

	var (
		main      *circuit.Component
		mainFound bool
		seenIDs   = make(map[string]bool, len(mod.Components))
	)

	for i := range mod.Components {
		comp := &mod.Components[i]

		if seenIDs[comp.ID] {
			return nil, flerrors.NewSemanticalError(comp.Line,
				fmt.Sprintf("component %q has already been declared", comp.ID))
		}
		seenIDs[comp.ID] = true

		built, err := b.visitComponent(comp)
		if err != nil {
			return nil, err
		}
		if comp.IsMain {
			if mainFound {
				return nil, flerrors.NewSemanticalError(comp.Line,
					fmt.Sprintf("%q can't be main, only one main component is allowed", comp.ID))
			}
			mainFound = true
			main = built
		}
	}

	if !mainFound {
		return nil, flerrors.NewSemanticalErrorNoLine("no main component found in a multi-component module")
	}

	return main, nil
}

// visitComponent runs the declaration pass, the wiring pass, the
// influence-list construction, and the validation pass for a single
// component, in that order (spec §4.3).
func (b *builder) visitComponent(comp *ast.Component) (*circuit.Component, error) {
	b.symbols = make(map[string]*busSymbol)
	out := circuit.NewComponent(comp.ID)

	if err := b.declarePass(out, comp); err != nil {
		return nil, err
	}
	if err := b.wirePass(out, comp); err != nil {
		return nil, err
	}

	b.validate(comp.ID)

	return out, nil
}

// declarePass registers every Decl as a circuit.Bus (width defaulting
// to 1 absent a dimension), rejecting duplicate ids and initializers on
// input buses before any wiring is attempted.
func (b *builder) declarePass(out *circuit.Component, comp *ast.Component) error {
	for _, stmt := range comp.Statements {
		decl, ok := stmt.(*ast.Decl)
		if !ok {
			continue
		}

		if _, exists := b.symbols[decl.ID]; exists {
			return flerrors.NewSemanticalError(decl.Line,
				fmt.Sprintf("bus %q has already been declared", decl.ID))
		}

		if decl.Connection == ast.Input && decl.Initializer != nil {
			return flerrors.NewSemanticalError(decl.Line,
				fmt.Sprintf("input bus %q cannot be assigned", decl.ID))
		}

		width := 1
		if decl.Dimension != nil {
			width = decl.Dimension.Value
		}

		bus := &circuit.Bus{
			ID:         decl.ID,
			Connection: circuit.Connection(decl.Connection),
			Value:      circuit.NewBusValue(width),
		}
		out.AddBus(bus)

		b.symbols[decl.ID] = &busSymbol{
			conn:       decl.Connection,
			isAssigned: decl.Connection == ast.Input,
			line:       decl.Line,
		}
	}

	return nil
}

// wirePass resolves every Decl initializer and every Assign statement
// into an IR node, width-checks it, and installs it via
// Bus.SetAssignment.
func (b *builder) wirePass(out *circuit.Component, comp *ast.Component) error {
	for _, stmt := range comp.Statements {
		switch s := stmt.(type) {
		case *ast.Decl:
			if s.Initializer == nil {
				continue
			}
			if err := b.assignBus(out, s.ID, s.Line, s.Initializer); err != nil {
				return err
			}

		case *ast.Assign:
			sym, declared := b.symbols[s.Destiny.ID]
			if !declared {
				return flerrors.NewSemanticalError(s.Destiny.Line,
					fmt.Sprintf("identifier %q has not been declared", s.Destiny.ID))
			}
			if sym.isAssigned {
				return flerrors.NewSemanticalError(s.Destiny.Line,
					fmt.Sprintf("identifier %q has already been assigned", s.Destiny.ID))
			}
			if sym.conn == ast.Input {
				return flerrors.NewSemanticalError(s.Destiny.Line,
					fmt.Sprintf("input bus %q cannot be assigned", s.Destiny.ID))
			}
			if err := b.assignBus(out, s.Destiny.ID, s.Line, s.Expr); err != nil {
				return err
			}

		case *ast.Inst:
			return flerrors.NewSemanticalError(s.Line, "sub-component instantiation is not yet supported")

		default:
			return flerrors.NewSemanticalErrorNoLine(fmt.Sprintf("unexpected statement %T", s))
		}
	}

	return nil
}

// assignBus builds the IR node for expr, width-checks it against id's
// declared size, and wires it onto the bus via SetAssignment.
func (b *builder) assignBus(out *circuit.Component, id string, line int, expr ast.Expr) error {
	bus, _ := out.Bus(id)

	node, err := b.buildExpr(out, expr)
	if err != nil {
		return err
	}

	if node.Width() != bus.Value.Width() {
		return flerrors.NewSemanticalError(expr.ExprLine(),
			fmt.Sprintf("width mismatch assigning to %q: expected %d bits, got %d", id, bus.Value.Width(), node.Width()))
	}

	bus.SetAssignment(node)
	b.symbols[id].isAssigned = true

	return nil
}

// buildExpr recursively converts an ast.Expr into a circuit.Node,
// resolving identifiers against the component's bus table and marking
// every referenced bus as read (spec §4.3 step 4, width inference).
func (b *builder) buildExpr(out *circuit.Component, expr ast.Expr) (circuit.Node, error) {
	switch e := expr.(type) {
	case ast.Identifier:
		sym, declared := b.symbols[e.ID]
		if !declared {
			return nil, flerrors.NewSemanticalError(e.Line,
				fmt.Sprintf("identifier %q has not been declared", e.ID))
		}
		sym.isRead = true
		bus, _ := out.Bus(e.ID)
		return circuit.BusRef{Bus: bus}, nil

	case ast.BitField:
		val, err := circuit.ParseBusValue(e.Value)
		if err != nil {
			return nil, flerrors.NewSemanticalError(e.Line, err.Error())
		}
		return circuit.Const{Value: val}, nil

	case ast.Not:
		inner, err := b.buildExpr(out, e.Expr)
		if err != nil {
			return nil, err
		}
		return circuit.Not{Expr: inner}, nil

	case ast.Binary:
		left, err := b.buildExpr(out, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(out, e.Right)
		if err != nil {
			return nil, err
		}
		if left.Width() != right.Width() {
			return nil, flerrors.NewSemanticalError(e.Line,
				fmt.Sprintf("width mismatch in %q: left is %d bits, right is %d bits", e.Kind, left.Width(), right.Width()))
		}
		return circuit.Binary{Kind: binaryKind(e.Kind), Left: left, Right: right}, nil

	default:
		return nil, flerrors.NewSemanticalErrorNoLine(fmt.Sprintf("unexpected expression %T", e))
	}
}

func binaryKind(k ast.BinaryKind) circuit.BinaryKind {
	switch k {
	case ast.BinAnd:
		return circuit.OpAnd
	case ast.BinOr:
		return circuit.OpOr
	case ast.BinXor:
		return circuit.OpXor
	case ast.BinNand:
		return circuit.OpNand
	case ast.BinNor:
		return circuit.OpNor
	case ast.BinXnor:
		return circuit.OpXnor
	default:
		panic("builder: unknown ast.BinaryKind")
	}
}

// validate logs (never fails) on buses that were declared but never
// assigned, or declared but never read, matching
// original_source/flote/elaboration/builder.py's validate_bus_symbol_table.
func (b *builder) validate(componentID string) {
	for id, sym := range b.symbols {
		if sym.conn != ast.Input && !sym.isAssigned {
			glog.Warningf("component %q: bus %q has not been assigned", componentID, id)
		}
		if sym.conn != ast.Output && !sym.isRead {
			glog.Warningf("component %q: bus %q is never read", componentID, id)
		}
	}
}
