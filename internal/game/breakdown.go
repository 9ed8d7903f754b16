package game

import (
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// PartState controls how one breakdown term is colored.
type PartState int

const (
	PartNormal PartState = iota
	PartHighlight
	PartCancelled
)

// BreakdownPart is one term of the tens/ones decomposition shown as a
// teaching aid under the equation.
type BreakdownPart struct {
	Value    int
	OpBefore rune // '+', '-', or 0 on the leading term
	State    PartState
}

// Decompose splits an equation into breakdown parts.
//
// Addition keeps each operand's tens as a single highlighted term:
// 18 + 23 becomes 10 + 8 + 20 + 3 with 10 and 20 highlighted.
// Subtraction splits the tens into individual 10s and marks the pairs
// that cancel: 31 - 20 becomes 10 + 10 + 10 + 1 - 10 - 10 with two
// +10/-10 pairs cancelled. Multiplication and division get a single
// plain term; there is nothing to decompose.
func Decompose(eq Equation) []BreakdownPart {
	switch eq.Operator {
	case OpAdd:
		return decomposeAdd(eq)
	case OpSub:
		return decomposeSub(eq)
	default:
		return []BreakdownPart{{Value: eq.Operand1}}
	}
}

func decomposeAdd(eq Equation) []BreakdownPart {
	tens1, ones1 := splitTens(eq.Operand1)
	tens2, ones2 := splitTens(eq.Operand2)

	var parts []BreakdownPart
	if tens1 != 0 {
		parts = append(parts, BreakdownPart{Value: tens1, State: PartHighlight})
	}
	if ones1 != 0 {
		p := BreakdownPart{Value: ones1}
		if tens1 != 0 {
			p.OpBefore = '+'
		}
		parts = append(parts, p)
	}
	if tens2 != 0 {
		parts = append(parts, BreakdownPart{Value: tens2, OpBefore: '+', State: PartHighlight})
	}
	if ones2 != 0 {
		parts = append(parts, BreakdownPart{Value: ones2, OpBefore: '+'})
	}
	return parts
}

func decomposeSub(eq Equation) []BreakdownPart {
	tens1, ones1 := splitTens(eq.Operand1)
	tens2, ones2 := splitTens(eq.Operand2)

	posTens := core.Abs(tens1) / 10
	negTens := core.Abs(tens2) / 10
	cancelled := core.Min(posTens, negTens)

	var parts []BreakdownPart
	for i := 0; i < posTens; i++ {
		p := BreakdownPart{Value: 10}
		if len(parts) > 0 {
			p.OpBefore = '+'
		}
		if i < cancelled {
			p.State = PartCancelled
		}
		parts = append(parts, p)
	}
	if ones1 != 0 {
		p := BreakdownPart{Value: ones1}
		if len(parts) > 0 {
			p.OpBefore = '+'
		}
		parts = append(parts, p)
	}
	for i := 0; i < negTens; i++ {
		p := BreakdownPart{Value: 10, OpBefore: '-'}
		if i < cancelled {
			p.State = PartCancelled
		}
		parts = append(parts, p)
	}
	if ones2 != 0 {
		parts = append(parts, BreakdownPart{Value: core.Abs(ones2), OpBefore: '-'})
	}
	return parts
}

// splitTens decomposes a number into its tens and ones components.
// Negative numbers decompose as the negated parts of their absolute
// value, so -23 becomes (-20, -3).
func splitTens(n int) (tens, ones int) {
	if n >= 0 {
		return (n / 10) * 10, n % 10
	}
	abs := -n
	return -((abs / 10) * 10), -(abs % 10)
}
