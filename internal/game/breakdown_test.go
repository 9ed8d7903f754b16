package game

import "testing"

func partsEqual(t *testing.T, got, want []BreakdownPart) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d parts %+v, want %d parts %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecomposeAddition(t *testing.T) {
	parts := Decompose(Equation{Operand1: 18, Operand2: 23, Operator: OpAdd, Answer: 41})
	partsEqual(t, parts, []BreakdownPart{
		{Value: 10, State: PartHighlight},
		{Value: 8, OpBefore: '+'},
		{Value: 20, OpBefore: '+', State: PartHighlight},
		{Value: 3, OpBefore: '+'},
	})
}

func TestDecomposeAdditionSkipsZeroComponents(t *testing.T) {
	cases := []struct {
		name string
		eq   Equation
		want []BreakdownPart
	}{
		{
			// 20 has no ones, 5 has no tens.
			"round plus small", Equation{Operand1: 20, Operand2: 5, Operator: OpAdd, Answer: 25},
			[]BreakdownPart{
				{Value: 20, State: PartHighlight},
				{Value: 5, OpBefore: '+'},
			},
		},
		{
			// Leading term has no tens, so the ones carry no operator.
			"small plus round", Equation{Operand1: 7, Operand2: 30, Operator: OpAdd, Answer: 37},
			[]BreakdownPart{
				{Value: 7},
				{Value: 30, OpBefore: '+', State: PartHighlight},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			partsEqual(t, Decompose(tc.eq), tc.want)
		})
	}
}

func TestDecomposeSubtractionCancelsPairs(t *testing.T) {
	// 31 - 20: three +10s against two -10s, two pairs cancel.
	parts := Decompose(Equation{Operand1: 31, Operand2: 20, Operator: OpSub, Answer: 11})
	partsEqual(t, parts, []BreakdownPart{
		{Value: 10, State: PartCancelled},
		{Value: 10, OpBefore: '+', State: PartCancelled},
		{Value: 10, OpBefore: '+'},
		{Value: 1, OpBefore: '+'},
		{Value: 10, OpBefore: '-', State: PartCancelled},
		{Value: 10, OpBefore: '-', State: PartCancelled},
	})
}

func TestDecomposeSubtractionNegativeResult(t *testing.T) {
	// 11 - 20: the lone +10 cancels against one of the -10s.
	parts := Decompose(Equation{Operand1: 11, Operand2: 20, Operator: OpSub, Answer: -9})
	partsEqual(t, parts, []BreakdownPart{
		{Value: 10, State: PartCancelled},
		{Value: 1, OpBefore: '+'},
		{Value: 10, OpBefore: '-', State: PartCancelled},
		{Value: 10, OpBefore: '-'},
	})
}

func TestDecomposeSubtractionPartsSum(t *testing.T) {
	eqs := []Equation{
		{Operand1: 45, Operand2: 17, Operator: OpSub, Answer: 28},
		{Operand1: 70, Operand2: 5, Operator: OpSub, Answer: 65},
		{Operand1: 9, Operand2: 3, Operator: OpSub, Answer: 6},
		{Operand1: 3, Operand2: 41, Operator: OpSub, Answer: -38},
	}

	for _, eq := range eqs {
		sum := 0
		for _, p := range Decompose(eq) {
			if p.OpBefore == '-' {
				sum -= p.Value
			} else {
				sum += p.Value
			}
		}
		if sum != eq.Answer {
			t.Errorf("%s: parts sum to %d, want %d", eq, sum, eq.Answer)
		}
	}
}

func TestDecomposeMulDivSinglePart(t *testing.T) {
	mul := Decompose(Equation{Operand1: 3, Operand2: 4, Operator: OpMul, Answer: 12})
	partsEqual(t, mul, []BreakdownPart{{Value: 3}})

	div := Decompose(Equation{Operand1: 36, Operand2: 6, Operator: OpDiv, Answer: 6})
	partsEqual(t, div, []BreakdownPart{{Value: 36}})
}

func TestSplitTens(t *testing.T) {
	cases := []struct {
		n, tens, ones int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{10, 10, 0},
		{23, 20, 3},
		{79, 70, 9},
		{-5, 0, -5},
		{-23, -20, -3},
	}

	for _, tc := range cases {
		tens, ones := splitTens(tc.n)
		if tens != tc.tens || ones != tc.ones {
			t.Errorf("splitTens(%d) = (%d, %d), want (%d, %d)", tc.n, tens, ones, tc.tens, tc.ones)
		}
	}
}
