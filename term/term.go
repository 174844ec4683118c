// Package term defines the data model for parsed proof-trace
// statements: first-order expressions, predicates, sequents, and
// rule-application records. Values are built once by the parser and
// never modified afterwards.
package term

import (
	"strconv"
	"strings"
)

// Expr is a first-order term: a variable or a named application.
type Expr interface {
	String() string
	expr()
}

// Var is a variable or constant name.
type Var struct {
	Name string
}

// App is a function or relation name applied to argument expressions.
type App struct {
	Name string
	Args []Expr
}

func (*Var) expr() {}
func (*App) expr() {}

func (v *Var) String() string {
	return v.Name
}

func (a *App) String() string {
	args := make([]string, len(a.Args))
	for i, x := range a.Args {
		args[i] = x.String()
	}
	return a.Name + "(" + strings.Join(args, ",") + ")"
}

// Binder distinguishes the four quantifier forms of the trace
// language. The prover's rule families treat them as distinct
// constructs, they are never interchangeable sugar.
type Binder int

const (
	Forall0 Binder = iota // "!", unary shorthand
	Forall1               // "forall" keyword
	Forall2               // "forall2" keyword, pair form
	Exists                // "#"
)

// String returns the concrete marker of the binder.
func (b Binder) String() string {
	return [...]string{"!", "forall", "forall2", "#"}[b]
}

// BinOp is a binary predicate connective.
type BinOp int

const (
	And BinOp = iota
	Or
	Imp
	Iff
	PredEq // "=" joining predicates rather than plain expressions
)

func (op BinOp) String() string {
	return [...]string{"and", "or", "=>", "<=>", "="}[op]
}

// Pred is a predicate: a logical proposition of the trace language.
type Pred interface {
	String() string
	pred()
}

// Lift is a boolean-valued expression used as a predicate.
type Lift struct {
	X Expr
}

// Not is the negation of a predicate.
type Not struct {
	P Pred
}

// Binary joins two predicates with a connective.
type Binary struct {
	Op   BinOp
	L, R Pred
}

// Bind is a quantified predicate. Vars is never empty.
type Bind struct {
	Binder Binder
	Vars   []string
	Body   Pred
}

// Mem states that each element expression has the given type
// (set membership). Elems is never empty.
type Mem struct {
	Elems []Expr
	Type  Expr
}

// Eq is equality between two expressions.
type Eq struct {
	L, R Expr
}

func (*Lift) pred()   {}
func (*Not) pred()    {}
func (*Binary) pred() {}
func (*Bind) pred()   {}
func (*Mem) pred()    {}
func (*Eq) pred()     {}

// Binding powers used when rendering concrete syntax, matching the
// parser's table: => 1, <=> 2, or/and 3, = and : 5, comma 6.
var binOpPrec = [...]int{And: 3, Or: 3, Imp: 1, Iff: 2, PredEq: 5}

const atomPrec = 9

func predPrec(p Pred) int {
	switch q := p.(type) {
	case *Binary:
		return binOpPrec[q.Op]
	case *Bind:
		return 0
	case *Mem, *Eq:
		return 5
	default:
		return atomPrec
	}
}

// wrap renders p, parenthesized if it binds looser than min.
func wrap(p Pred, min int) string {
	if predPrec(p) < min {
		return "(" + p.String() + ")"
	}
	return p.String()
}

func (l *Lift) String() string {
	return l.X.String()
}

func (n *Not) String() string {
	return "not (" + n.P.String() + ")"
}

func (b *Binary) String() string {
	prec := binOpPrec[b.Op]
	return wrap(b.L, prec) + " " + b.Op.String() + " " + wrap(b.R, prec+1)
}

func (b *Bind) String() string {
	vars := b.Vars[0]
	if len(b.Vars) > 1 {
		vars = "(" + strings.Join(b.Vars, ",") + ")"
	}
	sep := ""
	if b.Binder == Forall1 || b.Binder == Forall2 {
		sep = " "
	}
	return b.Binder.String() + sep + vars + "." + b.Body.String()
}

func (m *Mem) String() string {
	elems := make([]string, len(m.Elems))
	for i, x := range m.Elems {
		elems[i] = x.String()
	}
	return strings.Join(elems, ",") + ":" + m.Type.String()
}

func (e *Eq) String() string {
	return e.L.String() + " = " + e.R.String()
}

// Sequent pairs ordered hypothesis predicates with a conclusion.
// Hypothesis order is the source declaration order: rules may
// reference hypotheses positionally.
type Sequent struct {
	Hyps  []Pred
	Concl Pred
}

func (s Sequent) String() string {
	var sb strings.Builder
	sb.WriteString("(Hyp")
	for _, h := range s.Hyps {
		sb.WriteString(", ")
		sb.WriteString(h.String())
	}
	sb.WriteString(" |- ")
	sb.WriteString(s.Concl.String())
	sb.WriteString(")")
	return sb.String()
}

// Arg parameterizes a rule name: a numeric index or a predicate.
type Arg interface {
	String() string
	arg()
}

// Index is a natural-number rule argument.
type Index struct {
	N int
}

// PredArg is a predicate rule argument.
type PredArg struct {
	P Pred
}

func (*Index) arg()   {}
func (*PredArg) arg() {}

func (i *Index) String() string {
	return "(" + strconv.Itoa(i.N) + ")"
}

func (a *PredArg) String() string {
	return a.P.String()
}

// Lhs is the bracketed rule descriptor of a trace statement.
type Lhs struct {
	Rule string
	Arg  Arg // nil when the rule takes no argument
}

func (l Lhs) String() string {
	switch a := l.Arg.(type) {
	case nil:
		return "[" + l.Rule + "]"
	case *Index:
		return "[" + l.Rule + a.String() + "]"
	default:
		if l.Rule == "FIN" {
			return "[FIN(" + a.String() + ")]"
		}
		return "[" + l.Rule + " " + a.String() + "]"
	}
}

// Rhs is the angle-bracketed payload of a trace statement.
type Rhs interface {
	String() string
	rhs()
}

// Simple wraps a single goal predicate.
type Simple struct {
	P Pred
}

// Fin is a finiteness side condition: a predicate, exactly two
// sequents, and a numeric witness.
type Fin struct {
	P           Pred
	Left, Right Sequent
	N           int
}

func (*Simple) rhs() {}
func (*Fin) rhs()    {}

func (s *Simple) String() string {
	return "<" + s.P.String() + ">"
}

func (f *Fin) String() string {
	return "<FIN(" + f.P.String() + " | " + f.Left.String() + " | " +
		f.Right.String() + " | " + strconv.Itoa(f.N) + ")>"
}

// Line is one parsed trace statement.
type Line struct {
	Lhs Lhs
	Rhs Rhs
}

func (l Line) String() string {
	return l.Lhs.String() + " " + l.Rhs.String()
}
