package game

import (
	"fmt"
	"math/rand"
)

// Op identifies an arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator's display glyph.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	}
	return "?"
}

// String returns the operator name for debugging output.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Equation is one arithmetic problem. Immutable once generated; a new
// wave supersedes it wholesale.
type Equation struct {
	Operand1 int
	Operand2 int
	Operator Op
	Answer   int
}

// String formats the problem the way the HUD shows it.
func (e Equation) String() string {
	return fmt.Sprintf("%d %s %d = ?", e.Operand1, e.Operator.Symbol(), e.Operand2)
}

// Difficulty curriculum. Levels gate both the operator pool and the
// operand ranges.
const (
	maxEquationAttempts = 20

	addEasyMin = 1
	addEasyMax = 20
	addHardMin = 5
	addHardMax = 49

	subEasyMax = 20
	subHardMax = 79

	mulOperandMin = 2
	mulOperandMax = 13

	divAnswerMin  = 2
	divAnswerMax  = 11
	divDivisorMin = 2
	divDivisorMax = 10
)

// Generator produces arithmetic problems for a difficulty level.
// Randomness comes from the injected source only.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator driven by rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns a fresh equation for the level. Candidates that are
// trivial (adding zero, subtracting zero) or whose answer is already
// displayed by a flying drone are rejected and re-rolled, up to
// maxEquationAttempts; after that the last candidate is accepted so the
// game always has something playable.
func (g *Generator) Generate(level int, existing map[int]bool, allowNegative bool) Equation {
	var eq Equation
	for attempt := 0; attempt < maxEquationAttempts; attempt++ {
		eq = g.roll(level, allowNegative)
		if eq.trivial() || existing[eq.Answer] {
			continue
		}
		break
	}
	return eq
}

// roll produces one unchecked candidate.
func (g *Generator) roll(level int, allowNegative bool) Equation {
	var eq Equation
	pool := operatorPool(level)
	eq.Operator = pool[g.rng.Intn(len(pool))]

	switch eq.Operator {
	case OpAdd:
		lo, hi := addEasyMin, addEasyMax
		if level >= 2 {
			lo, hi = addHardMin, addHardMax
		}
		eq.Operand1 = g.intBetween(lo, hi)
		eq.Operand2 = g.intBetween(lo, hi)
		eq.Answer = eq.Operand1 + eq.Operand2

	case OpSub:
		switch {
		case allowNegative:
			hi := subEasyMax
			if level >= 2 {
				hi = subHardMax
			}
			eq.Operand1 = g.intBetween(0, hi)
			eq.Operand2 = g.intBetween(0, hi)
		case level == 1:
			eq.Operand1 = g.intBetween(0, subEasyMax)
			eq.Operand2 = g.intBetween(0, eq.Operand1)
		default:
			// Minuend 20-79; subtrahend at least 5, never past the minuend.
			eq.Operand1 = g.intBetween(20, subHardMax)
			eq.Operand2 = 5 + g.rng.Intn(eq.Operand1-4)
		}
		eq.Answer = eq.Operand1 - eq.Operand2

	case OpMul:
		eq.Operand1 = g.intBetween(mulOperandMin, mulOperandMax)
		eq.Operand2 = g.intBetween(mulOperandMin, mulOperandMax)
		eq.Answer = eq.Operand1 * eq.Operand2

	case OpDiv:
		// Answer-first so the quotient is always a whole number.
		eq.Answer = g.intBetween(divAnswerMin, divAnswerMax)
		eq.Operand2 = g.intBetween(divDivisorMin, divDivisorMax)
		eq.Operand1 = eq.Answer * eq.Operand2
	}
	return eq
}

// trivial reports whether the problem is a no-op not worth asking.
func (e Equation) trivial() bool {
	switch e.Operator {
	case OpAdd:
		return e.Operand1 == 0 || e.Operand2 == 0
	case OpSub:
		return e.Operand2 == 0
	}
	return false
}

// operatorPool returns the operators unlocked at the given level.
func operatorPool(level int) []Op {
	switch {
	case level <= 1:
		return []Op{OpAdd, OpSub}
	case level == 2:
		return []Op{OpAdd, OpSub, OpMul}
	default:
		return []Op{OpAdd, OpSub, OpMul, OpDiv}
	}
}

// intBetween returns a uniform value in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
