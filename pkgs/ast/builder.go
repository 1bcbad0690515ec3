package ast

// Terse constructor helpers in the teacher's style (pkgs/ast/builder.go's
// Var/Cmd/Id/Str family): used by tests to build expected trees for
// cmp.Diff comparisons. The parser builds its nodes as struct literals.

// Id creates an Identifier expression node.
func Id(name string, line int) Identifier {
	return Identifier{ID: name, Line: line}
}

// Bits creates a BitField expression node from its bare digits (without
// surrounding quotes).
func Bits(digits string, line int) BitField {
	return BitField{Value: digits, Line: line}
}

// Un creates a Not expression node.
func Un(expr Expr, line int) Not {
	return Not{Expr: expr, Line: line}
}

// Bin creates a binary expression node of the given kind.
func Bin(kind BinaryKind, left, right Expr, line int) Binary {
	return Binary{Kind: kind, Left: left, Right: right, Line: line}
}

// Decl1 creates a single-bit (no dimension) bus declaration.
func Decl1(id string, conn Connection, init Expr, line int) *Decl {
	return &Decl{ID: id, Connection: conn, Initializer: init, Line: line}
}

// DeclN creates a declaration with an explicit bit width.
func DeclN(id string, conn Connection, width, line int) *Decl {
	return &Decl{ID: id, Connection: conn, Dimension: &Size{Value: width, Line: line}, Line: line}
}

// Set creates an Assign statement.
func Set(destiny string, destinyLine int, expr Expr, line int) *Assign {
	return &Assign{Destiny: Identifier{ID: destiny, Line: destinyLine}, Expr: expr, Line: line}
}

// Comp creates a Component node from an ordered list of statements.
func Comp(id string, isMain bool, line int, stmts ...Statement) Component {
	return Component{ID: id, IsMain: isMain, Statements: stmts, Line: line}
}

// Mod creates a Module node from an ordered list of components.
func Mod(comps ...Component) *Module {
	return &Module{Components: comps}
}
