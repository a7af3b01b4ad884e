package parser

import (
	"math/big"

	"github.com/wyf-zk/zksnark-core/field"
	"github.com/wyf-zk/zksnark-core/snark/r1cs"
)

// Circuit is the output of compiling an equation: the R1CS system plus
// the variable table the parser built while walking the AST.
type Circuit struct {
	System      *r1cs.System
	PublicVars  map[string]int
	PrivateVars map[string]int
}

// Compile turns a parsed equation into an R1CS, treating every name in
// publicNames as a public input and every other variable encountered as
// private. Division by a variable allocates an inverse witness plus the
// constraint that enforces it; division by a numeric literal is folded
// into a scalar multiply with no new row.
func Compile(eq *Equation, publicNames []string) (*Circuit, error) {
	public := make(map[string]bool, len(publicNames))
	for _, n := range publicNames {
		public[n] = true
	}

	sys := r1cs.NewSystem(0)
	c := &Circuit{System: sys, PublicVars: map[string]int{}, PrivateVars: map[string]int{}}

	comp := &compiler{sys: sys, circuit: c, public: public, varIndex: map[string]int{}}

	// Pre-allocate named variables with public inputs occupying the
	// low, contiguous index range right after the constant-1 slot, so
	// the QAP/Pinocchio public/private split is a simple index range
	// rather than a scattered set.
	names := collectVarNames(eq.LHS)
	for _, n := range names {
		if public[n] {
			comp.resolveVar(n)
		}
	}
	for _, n := range names {
		if !public[n] {
			comp.resolveVar(n)
		}
	}

	lhs, err := comp.compileExpr(eq.LHS)
	if err != nil {
		return nil, err
	}

	value, err := parseFieldLiteral(eq.Value)
	if err != nil {
		return nil, err
	}

	one := r1cs.LinearCombination{{Index: 0, Coefficient: field.FrOne()}}
	rhs := r1cs.LinearCombination{{Index: 0, Coefficient: value}}
	sys.AddConstraint(lhs, one, rhs)

	// NumPublic must count only the public indices that were actually
	// allocated, and they must be the low, contiguous indices right
	// after the constant-1 slot for the QAP/Pinocchio split between
	// public and private witness parts to be simple index ranges.
	sys.NumPublic = len(c.PublicVars)

	return c, nil
}

type compiler struct {
	sys      *r1cs.System
	circuit  *Circuit
	public   map[string]bool
	varIndex map[string]int
}

func (c *compiler) resolveVar(name string) int {
	if idx, ok := c.varIndex[name]; ok {
		return idx
	}
	idx := c.sys.AllocVar(name)
	c.varIndex[name] = idx
	if c.public[name] {
		c.circuit.PublicVars[name] = idx
	} else {
		c.circuit.PrivateVars[name] = idx
	}
	return idx
}

func parseFieldLiteral(s string) (*field.Fr, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &parseLiteralError{s}
	}
	return field.NewFr(v), nil
}

type parseLiteralError struct{ s string }

func (e *parseLiteralError) Error() string { return "parser: invalid numeric literal " + e.s }

// collectVarNames walks n and returns every distinct variable name it
// references, in first-encounter order.
func collectVarNames(n node) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(node)
	walk = func(n node) {
		switch v := n.(type) {
		case *varNode:
			if !seen[v.name] {
				seen[v.name] = true
				order = append(order, v.name)
			}
		case *binNode:
			walk(v.left)
			walk(v.right)
		}
	}
	walk(n)
	return order
}

// compileExpr compiles a node into a LinearCombination, allocating a
// fresh witness (and a constraint) for every genuine multiplication, and
// an inverse witness plus the product's witness (each with its
// constraint) for every variable-division node it encounters. Addition and subtraction never
// allocate: they just merge the operand combinations.
func (c *compiler) compileExpr(n node) (r1cs.LinearCombination, error) {
	switch v := n.(type) {
	case *varNode:
		idx := c.resolveVar(v.name)
		return r1cs.LinearCombination{{Index: idx, Coefficient: field.FrOne()}}, nil

	case *numNode:
		val, err := parseFieldLiteral(v.value)
		if err != nil {
			return nil, err
		}
		return r1cs.LinearCombination{{Index: 0, Coefficient: val}}, nil

	case *binNode:
		left, err := c.compileExpr(v.left)
		if err != nil {
			return nil, err
		}
		right, err := c.compileExpr(v.right)
		if err != nil {
			return nil, err
		}
		switch v.op {
		case '+':
			return mergeLC(left, field.FrOne(), right, field.FrOne()), nil
		case '-':
			return mergeLC(left, field.FrOne(), right, field.FrOne().Neg().(*field.Fr)), nil
		case '*':
			return c.multiply(left, right)
		case '/':
			return c.divide(left, right, v.right)
		}
	}
	return nil, &parseLiteralError{"unreachable AST node"}
}

// mergeLC computes a*lcA + b*lcB as a single combined, term-deduplicated
// linear combination.
func mergeLC(lcA r1cs.LinearCombination, a *field.Fr, lcB r1cs.LinearCombination, b *field.Fr) r1cs.LinearCombination {
	acc := map[int]*field.Fr{}
	order := []int{}
	add := func(lc r1cs.LinearCombination, scale *field.Fr) {
		for _, t := range lc {
			coeff := t.Coefficient.Mul(scale).(*field.Fr)
			if existing, ok := acc[t.Index]; ok {
				acc[t.Index] = existing.Add(coeff).(*field.Fr)
			} else {
				acc[t.Index] = coeff
				order = append(order, t.Index)
			}
		}
	}
	add(lcA, a)
	add(lcB, b)
	out := make(r1cs.LinearCombination, 0, len(order))
	for _, idx := range order {
		out = append(out, r1cs.Term{Index: idx, Coefficient: acc[idx]})
	}
	return out
}

// asConstant reports whether lc is a single term on the constant-1
// index, returning its scalar value.
func asConstant(lc r1cs.LinearCombination) (*field.Fr, bool) {
	if len(lc) == 0 {
		return field.FrZero(), true
	}
	if len(lc) == 1 && lc[0].Index == 0 {
		return lc[0].Coefficient, true
	}
	return nil, false
}

func scaleLC(lc r1cs.LinearCombination, s *field.Fr) r1cs.LinearCombination {
	out := make(r1cs.LinearCombination, len(lc))
	for i, t := range lc {
		out[i] = r1cs.Term{Index: t.Index, Coefficient: t.Coefficient.Mul(s).(*field.Fr)}
	}
	return out
}

// multiply compiles left*right. A constant operand folds into a scale
// with no new row; otherwise it allocates a product witness and one
// R1CS row, per the one-row-per-multiplication rule.
func (c *compiler) multiply(left, right r1cs.LinearCombination) (r1cs.LinearCombination, error) {
	if s, ok := asConstant(right); ok {
		return scaleLC(left, s), nil
	}
	if s, ok := asConstant(left); ok {
		return scaleLC(right, s), nil
	}
	z := c.sys.AllocVar("")
	c.sys.AddConstraint(left, right, r1cs.LinearCombination{{Index: z, Coefficient: field.FrOne()}})
	return r1cs.LinearCombination{{Index: z, Coefficient: field.FrOne()}}, nil
}

// divide compiles left/right. Division by a literal is multiplication
// by its field inverse. Division by a variable introduces a new witness
// for 1/right plus a constraint right*inv=1 that enforces it, then
// proceeds as a multiplication by that inverse witness.
func (c *compiler) divide(left, right r1cs.LinearCombination, rightNode node) (r1cs.LinearCombination, error) {
	if s, ok := asConstant(right); ok {
		inv, err := s.Inverse()
		if err != nil {
			return nil, err
		}
		return scaleLC(left, inv.(*field.Fr)), nil
	}

	invVar := c.sys.AllocVar("")
	one := r1cs.LinearCombination{{Index: 0, Coefficient: field.FrOne()}}
	invLC := r1cs.LinearCombination{{Index: invVar, Coefficient: field.FrOne()}}
	c.sys.AddConstraint(right, invLC, one)

	return c.multiply(left, invLC)
}
