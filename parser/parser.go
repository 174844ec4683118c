// Package parser implements the proof-trace grammar: a
// precedence-climbing parser for the predicate term language plus the
// bracketed rule-record productions wrapping it.
//
// The operator set reuses its tokens across unrelated productions
// (comma separates tuple elements, application arguments, hypotheses,
// and binding variables; colon is membership; parentheses group
// predicates, argument lists, bindings, and sequents). All of it is
// disambiguated by the numeric precedence table below and by one token
// of lookahead, so the tie-break logic stays auditable in one place.
package parser

import (
	"strconv"

	"github.com/ava12/prooftrace/lexer"
	"github.com/ava12/prooftrace/source"
	"github.com/ava12/prooftrace/term"
)

// Infix binding powers, loosest first. Comma binds tighter than "="
// and ":" so that a full tuple is accumulated before membership or
// equality consume it: "x,y:z" is Mem([x y], z).
var infixPrec = map[lexer.Type]int{
	lexer.Imp:   1,
	lexer.Iff:   2,
	lexer.Or:    3,
	lexer.And:   3,
	lexer.Eq:    5,
	lexer.Colon: 5,
	lexer.Comma: 6,
}

const (
	lowestPrec = 1
	commaPrec  = 6
)

var binOps = map[lexer.Type]term.BinOp{
	lexer.And: term.And,
	lexer.Or:  term.Or,
	lexer.Imp: term.Imp,
	lexer.Iff: term.Iff,
}

var binders = map[lexer.Type]term.Binder{
	lexer.Bang:    term.Forall0,
	lexer.Forall:  term.Forall1,
	lexer.Forall2: term.Forall2,
	lexer.Exists:  term.Exists,
}

// operand is the value the precedence climb carries: either a finished
// predicate or a flat comma list. What a comma list means is decided by
// whatever consumes it: ":" takes it as the element tuple of a
// membership, the sequent production splits it into hypotheses, and
// anything demanding a plain predicate rejects it.
type operand struct {
	pred  term.Pred
	items []operand // len >= 2, only when pred is nil; items never nest
}

// itemsOf views an operand as a comma list, a lone operand being a
// singleton.
func itemsOf(o operand) []operand {
	if o.items != nil {
		return o.items
	}
	return []operand{o}
}

// Parser reads rule-application lines from one token stream.
type Parser struct {
	lx        *lexer.Lexer
	cur, next *lexer.Token
}

// New creates a Parser over src.
func New(src *source.Source) *Parser {
	p := &Parser{lx: lexer.New(src)}
	p.cur = p.lx.Next()
	p.next = p.lx.Next()
	return p
}

// ParseLine parses one "lhs rhs" statement. Returns nil, nil at clean
// end of input. On a syntax error returns a *prooftrace.Error carrying
// line, column, and the offending lexeme.
func (p *Parser) ParseLine() (*term.Line, error) {
	if p.cur.Type() == lexer.EOF {
		return nil, nil
	}

	lhs, e := p.parseLhs()
	if e != nil {
		return nil, e
	}
	rhs, e := p.parseRhs()
	if e != nil {
		return nil, e
	}
	return &term.Line{Lhs: lhs, Rhs: rhs}, nil
}

func (p *Parser) advance() *lexer.Token {
	t := p.cur
	p.cur = p.next
	p.next = p.lx.Next()
	return t
}

func (p *Parser) expect(tt lexer.Type) (*lexer.Token, error) {
	if p.cur.Type() != tt {
		return nil, expectedTokenError(p.cur, tt)
	}
	return p.advance(), nil
}

// lhs := '[' 'FIN' '(' predicate ')' ']'
//      | '[' symbol ']'
//      | '[' symbol '(' natural ')' ']'
//      | '[' symbol predicate ']'
func (p *Parser) parseLhs() (term.Lhs, error) {
	if _, e := p.expect(lexer.LBracket); e != nil {
		return term.Lhs{}, e
	}

	if p.cur.Type() == lexer.Fin {
		p.advance()
		pred, e := p.parseParenPred()
		if e == nil {
			_, e = p.expect(lexer.RBracket)
		}
		return term.Lhs{Rule: "FIN", Arg: &term.PredArg{P: pred}}, e
	}

	name, e := p.expect(lexer.Symbol)
	if e != nil {
		return term.Lhs{}, e
	}

	switch {
	case p.cur.Type() == lexer.RBracket:
		p.advance()
		return term.Lhs{Rule: name.Text()}, nil

	case p.cur.Type() == lexer.LParen && p.next.Type() == lexer.Number:
		// "(" natural ")" is an index; a predicate argument cannot
		// start with a number, so one extra token settles it.
		p.advance()
		n, e := p.natural()
		if e == nil {
			_, e = p.expect(lexer.RParen)
		}
		if e == nil {
			_, e = p.expect(lexer.RBracket)
		}
		return term.Lhs{Rule: name.Text(), Arg: &term.Index{N: n}}, e

	default:
		pred, e := p.parsePred()
		if e == nil {
			_, e = p.expect(lexer.RBracket)
		}
		return term.Lhs{Rule: name.Text(), Arg: &term.PredArg{P: pred}}, e
	}
}

// rhs := '<' predicate '>'
//      | '<' 'FIN' '(' predicate '|' sequent '|' sequent '|' natural ')' '>'
func (p *Parser) parseRhs() (term.Rhs, error) {
	if _, e := p.expect(lexer.Lt); e != nil {
		return nil, e
	}

	if p.cur.Type() != lexer.Fin {
		pred, e := p.parsePred()
		if e == nil {
			_, e = p.expect(lexer.Gt)
		}
		return &term.Simple{P: pred}, e
	}

	p.advance()
	if _, e := p.expect(lexer.LParen); e != nil {
		return nil, e
	}
	pred, e := p.parsePred()
	if e != nil {
		return nil, e
	}
	if _, e = p.expect(lexer.Pipe); e != nil {
		return nil, e
	}
	left, e := p.parseSequent()
	if e != nil {
		return nil, e
	}
	if _, e = p.expect(lexer.Pipe); e != nil {
		return nil, e
	}
	right, e := p.parseSequent()
	if e != nil {
		return nil, e
	}
	if _, e = p.expect(lexer.Pipe); e != nil {
		return nil, e
	}
	n, e := p.natural()
	if e == nil {
		_, e = p.expect(lexer.RParen)
	}
	if e == nil {
		_, e = p.expect(lexer.Gt)
	}
	return &term.Fin{P: pred, Left: left, Right: right, N: n}, e
}

// sequent := '(' 'Hyp' (',' predicate)* '|-' predicate ')'
// Hypotheses are stored in declared left-to-right order.
func (p *Parser) parseSequent() (term.Sequent, error) {
	var seq term.Sequent

	if _, e := p.expect(lexer.LParen); e != nil {
		return seq, e
	}
	if _, e := p.expect(lexer.Hyp); e != nil {
		return seq, e
	}

	if p.cur.Type() == lexer.Comma {
		op := p.advance()
		o, e := p.parseOperand(lowestPrec)
		if e != nil {
			return seq, e
		}
		seq.Hyps, e = hypotheses(o, op)
		if e != nil {
			return seq, e
		}
	}

	if _, e := p.expect(lexer.Turnstile); e != nil {
		return seq, e
	}
	concl, e := p.parsePred()
	if e == nil {
		seq.Concl = concl
		_, e = p.expect(lexer.RParen)
	}
	return seq, e
}

// hypotheses splits a comma-accumulated operand back into the declared
// hypothesis list: the climb groups "p, q" into one comma list, but
// between 'Hyp' and '|-' the commas separate hypotheses. Left-to-right
// source order is preserved by construction.
func hypotheses(o operand, at *lexer.Token) ([]term.Pred, error) {
	items := itemsOf(o)
	hyps := make([]term.Pred, len(items))
	for i, it := range items {
		p, e := predOf(it, at)
		if e != nil {
			return nil, e
		}
		hyps[i] = p
	}
	return hyps, nil
}

func (p *Parser) parsePred() (term.Pred, error) {
	at := p.cur
	o, e := p.parseOperand(lowestPrec)
	if e != nil {
		return nil, e
	}
	return predOf(o, at)
}

func (p *Parser) parseParenPred() (term.Pred, error) {
	if _, e := p.expect(lexer.LParen); e != nil {
		return nil, e
	}
	pred, e := p.parsePred()
	if e == nil {
		_, e = p.expect(lexer.RParen)
	}
	return pred, e
}

// parseOperand is the precedence climb: a prefix construct followed by
// infix operators binding at least as tight as min.
func (p *Parser) parseOperand(min int) (operand, error) {
	left, e := p.parsePrefix()
	if e != nil {
		return left, e
	}

	for {
		prec, isInfix := infixPrec[p.cur.Type()]
		if !isInfix || prec < min {
			return left, nil
		}
		op := p.advance()
		rmin := prec + 1
		if op.Type() == lexer.Colon || op.Type() == lexer.Eq {
			// ":" and "=" take a single expression on the right; a
			// following comma belongs to the enclosing list, so the
			// right side parses strictly above the comma tier.
			rmin = commaPrec + 1
		}
		right, e := p.parseOperand(rmin)
		if e != nil {
			return left, e
		}
		left, e = combine(op, left, right)
		if e != nil {
			return left, e
		}
	}
}

func combine(op *lexer.Token, left, right operand) (operand, error) {
	switch op.Type() {
	case lexer.Comma:
		return operand{items: append(itemsOf(left), itemsOf(right)...)}, nil

	case lexer.Colon:
		xs, e := exprsOf(left, op)
		if e != nil {
			return operand{}, e
		}
		x, e := exprOf(right, op)
		if e != nil {
			return operand{}, e
		}
		return operand{pred: &term.Mem{Elems: xs, Type: x}}, nil

	case lexer.Eq:
		// Equality of plain expressions is the direct Eq node;
		// anything else is equality lifted to predicates.
		lx, lok := singleExpr(left)
		rx, rok := singleExpr(right)
		if lok && rok {
			return operand{pred: &term.Eq{L: lx, R: rx}}, nil
		}
		lp, e := predOf(left, op)
		if e != nil {
			return operand{}, e
		}
		rp, e := predOf(right, op)
		if e != nil {
			return operand{}, e
		}
		return operand{pred: &term.Binary{Op: term.PredEq, L: lp, R: rp}}, nil

	default:
		lp, e := predOf(left, op)
		if e != nil {
			return operand{}, e
		}
		rp, e := predOf(right, op)
		if e != nil {
			return operand{}, e
		}
		return operand{pred: &term.Binary{Op: binOps[op.Type()], L: lp, R: rp}}, nil
	}
}

func (p *Parser) parsePrefix() (operand, error) {
	switch p.cur.Type() {
	case lexer.Not:
		p.advance()
		at := p.cur
		o, e := p.parseAtom()
		if e != nil {
			return o, e
		}
		pred, e := predOf(o, at)
		if e != nil {
			return operand{}, e
		}
		return operand{pred: &term.Not{P: pred}}, nil

	case lexer.Bang, lexer.Forall, lexer.Forall2, lexer.Exists:
		return p.parseBind()

	default:
		return p.parseAtom()
	}
}

// binder-term := binder binding '.' term
// The body extends maximally to the right: it is parsed at the lowest
// precedence, so "!x.!y.p and q" binds "(!y.(p and q))" under "!x".
func (p *Parser) parseBind() (operand, error) {
	b := binders[p.advance().Type()]
	vars, e := p.parseBinding()
	if e != nil {
		return operand{}, e
	}
	if _, e = p.expect(lexer.Dot); e != nil {
		return operand{}, e
	}
	at := p.cur
	o, e := p.parseOperand(lowestPrec)
	if e != nil {
		return o, e
	}
	body, e := predOf(o, at)
	if e != nil {
		return operand{}, e
	}
	return operand{pred: &term.Bind{Binder: b, Vars: vars, Body: body}}, nil
}

// binding := symbol | '(' symbol (',' symbol)* ')'
func (p *Parser) parseBinding() ([]string, error) {
	if p.cur.Type() == lexer.Symbol {
		return []string{p.advance().Text()}, nil
	}

	if _, e := p.expect(lexer.LParen); e != nil {
		return nil, e
	}
	var names []string
	for {
		t, e := p.expect(lexer.Symbol)
		if e != nil {
			return nil, e
		}
		names = append(names, t.Text())
		if p.cur.Type() != lexer.Comma {
			break
		}
		p.advance()
	}
	_, e := p.expect(lexer.RParen)
	return names, e
}

// atom := symbol | symbol '(' term (',' term)* ')' | '(' term ')'
func (p *Parser) parseAtom() (operand, error) {
	switch p.cur.Type() {
	case lexer.LParen:
		// The group may hold a predicate or a bare tuple; the inner
		// operand is passed through so "(x,y):z" still becomes a Mem.
		p.advance()
		inner, e := p.parseOperand(lowestPrec)
		if e == nil {
			_, e = p.expect(lexer.RParen)
		}
		return inner, e

	case lexer.Symbol:
		name := p.advance().Text()
		if p.cur.Type() != lexer.LParen {
			return operand{pred: &term.Lift{X: &term.Var{Name: name}}}, nil
		}

		p.advance()
		var args []term.Expr
		for {
			at := p.cur
			o, e := p.parseOperand(commaPrec + 1)
			if e != nil {
				return o, e
			}
			x, e := exprOf(o, at)
			if e != nil {
				return operand{}, e
			}
			args = append(args, x)
			if p.cur.Type() != lexer.Comma {
				break
			}
			p.advance()
		}
		_, e := p.expect(lexer.RParen)
		return operand{pred: &term.Lift{X: &term.App{Name: name, Args: args}}}, e

	default:
		return operand{}, unexpectedTokenError(p.cur)
	}
}

func (p *Parser) natural() (int, error) {
	t, e := p.expect(lexer.Number)
	if e != nil {
		return 0, e
	}
	n, err := strconv.Atoi(t.Text())
	if err != nil {
		return 0, badNumberError(t)
	}
	return n, nil
}

// exprsOf flattens an operand to its expression list: every comma-list
// item must be a lifted expression, a lone lifted expression yields a
// singleton.
func exprsOf(o operand, at *lexer.Token) ([]term.Expr, error) {
	items := itemsOf(o)
	xs := make([]term.Expr, len(items))
	for i, it := range items {
		x, e := exprOf(it, at)
		if e != nil {
			return nil, e
		}
		xs[i] = x
	}
	return xs, nil
}

func exprOf(o operand, at *lexer.Token) (term.Expr, error) {
	x, isSingle := singleExpr(o)
	if !isSingle {
		return nil, expressionExpectedError(at)
	}
	return x, nil
}

func singleExpr(o operand) (term.Expr, bool) {
	if o.pred == nil {
		return nil, false
	}
	lift, isLift := o.pred.(*term.Lift)
	if !isLift {
		return nil, false
	}
	return lift.X, true
}

func predOf(o operand, at *lexer.Token) (term.Pred, error) {
	if o.pred == nil {
		return nil, predicateExpectedError(at)
	}
	return o.pred, nil
}
