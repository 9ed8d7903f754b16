package game

import (
	"math/rand"
	"testing"
)

func TestGenerateLevelGating(t *testing.T) {
	cases := []struct {
		name    string
		level   int
		allowed map[Op]bool
	}{
		{"level 1 adds and subtracts only", 1, map[Op]bool{OpAdd: true, OpSub: true}},
		{"level 2 unlocks multiplication", 2, map[Op]bool{OpAdd: true, OpSub: true, OpMul: true}},
		{"level 3 unlocks division", 3, map[Op]bool{OpAdd: true, OpSub: true, OpMul: true, OpDiv: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := NewGenerator(rand.New(rand.NewSource(7)))
			seen := make(map[Op]bool)
			for i := 0; i < 500; i++ {
				eq := gen.Generate(tc.level, nil, false)
				if !tc.allowed[eq.Operator] {
					t.Fatalf("level %d produced %v, want one of %v", tc.level, eq.Operator, tc.allowed)
				}
				seen[eq.Operator] = true
			}
			for op := range tc.allowed {
				if !seen[op] {
					t.Errorf("level %d never produced %v in 500 equations", tc.level, op)
				}
			}
		})
	}
}

func TestGenerateDivisionIsExact(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))

	divisions := 0
	for i := 0; i < 2000 && divisions < 200; i++ {
		eq := gen.Generate(3, nil, false)
		if eq.Operator != OpDiv {
			continue
		}
		divisions++

		if eq.Operand2 == 0 || eq.Operand1%eq.Operand2 != 0 {
			t.Fatalf("%d / %d does not divide evenly", eq.Operand1, eq.Operand2)
		}
		if eq.Answer != eq.Operand1/eq.Operand2 {
			t.Fatalf("%d / %d: answer %d, want %d", eq.Operand1, eq.Operand2, eq.Answer, eq.Operand1/eq.Operand2)
		}
		if eq.Answer < divAnswerMin || eq.Answer > divAnswerMax {
			t.Errorf("division answer %d outside [%d,%d]", eq.Answer, divAnswerMin, divAnswerMax)
		}
		if eq.Operand2 < divDivisorMin || eq.Operand2 > divDivisorMax {
			t.Errorf("divisor %d outside [%d,%d]", eq.Operand2, divDivisorMin, divDivisorMax)
		}
	}
	if divisions == 0 {
		t.Fatal("no division equations rolled at level 3")
	}
}

func TestGenerateOperandRanges(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(11)))

	for i := 0; i < 1000; i++ {
		level := 1 + i%3
		eq := gen.Generate(level, nil, false)

		switch eq.Operator {
		case OpAdd:
			lo, hi := addEasyMin, addEasyMax
			if level >= 2 {
				lo, hi = addHardMin, addHardMax
			}
			if eq.Operand1 < lo || eq.Operand1 > hi || eq.Operand2 < lo || eq.Operand2 > hi {
				t.Fatalf("level %d addition %d + %d outside [%d,%d]", level, eq.Operand1, eq.Operand2, lo, hi)
			}
		case OpSub:
			if eq.Operand2 > eq.Operand1 {
				t.Fatalf("level %d subtraction %d - %d would go negative", level, eq.Operand1, eq.Operand2)
			}
			if level >= 2 && (eq.Operand1 < 20 || eq.Operand1 > subHardMax || eq.Operand2 < 5) {
				t.Fatalf("level %d subtraction %d - %d outside expected ranges", level, eq.Operand1, eq.Operand2)
			}
		case OpMul:
			if eq.Operand1 < mulOperandMin || eq.Operand1 > mulOperandMax ||
				eq.Operand2 < mulOperandMin || eq.Operand2 > mulOperandMax {
				t.Fatalf("multiplication %d × %d outside [%d,%d]", eq.Operand1, eq.Operand2, mulOperandMin, mulOperandMax)
			}
		}
	}
}

func TestGenerateNonNegativeMode(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(21)))

	for i := 0; i < 1000; i++ {
		eq := gen.Generate(1+i%3, nil, false)
		if eq.Answer < 0 {
			t.Fatalf("negative answer %d from %s with negatives disabled", eq.Answer, eq)
		}
	}
}

func TestGenerateNegativesAllowed(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(5)))

	sawNegative := false
	for i := 0; i < 500; i++ {
		eq := gen.Generate(1, nil, true)
		if eq.Answer < 0 {
			sawNegative = true
			break
		}
	}
	if !sawNegative {
		t.Error("no negative answer in 500 equations with negatives allowed")
	}
}

func TestGenerateRejectsTrivial(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(13)))

	for i := 0; i < 500; i++ {
		eq := gen.Generate(1, nil, false)
		if eq.Operator == OpAdd && (eq.Operand1 == 0 || eq.Operand2 == 0) {
			t.Fatalf("trivial addition generated: %s", eq)
		}
		if eq.Operator == OpSub && eq.Operand2 == 0 {
			t.Fatalf("trivial subtraction generated: %s", eq)
		}
	}
}

func TestGenerateAvoidsDisplayedAnswers(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(17)))
	existing := map[int]bool{5: true, 12: true, 30: true}

	for i := 0; i < 300; i++ {
		eq := gen.Generate(1, existing, false)
		if existing[eq.Answer] {
			t.Fatalf("generated answer %d already displayed by a drone", eq.Answer)
		}
	}
}

func TestGenerateGivesUpAfterRetries(t *testing.T) {
	// Every reachable answer is taken, so the generator must fall back
	// to the last candidate instead of spinning forever.
	existing := make(map[int]bool)
	for n := -200; n <= 200; n++ {
		existing[n] = true
	}

	gen := NewGenerator(rand.New(rand.NewSource(29)))
	eq := gen.Generate(1, existing, false)

	if eq.Operator != OpAdd && eq.Operator != OpSub {
		t.Fatalf("fallback produced %v, want a level 1 operator", eq.Operator)
	}
	want := eq.Operand1 + eq.Operand2
	if eq.Operator == OpSub {
		want = eq.Operand1 - eq.Operand2
	}
	if eq.Answer != want {
		t.Errorf("fallback equation inconsistent: %s with answer %d", eq, eq.Answer)
	}
}

func TestEquationString(t *testing.T) {
	cases := []struct {
		name string
		eq   Equation
		want string
	}{
		{"addition", Equation{Operand1: 7, Operand2: 15, Operator: OpAdd, Answer: 22}, "7 + 15 = ?"},
		{"subtraction", Equation{Operand1: 31, Operand2: 20, Operator: OpSub, Answer: 11}, "31 - 20 = ?"},
		{"multiplication", Equation{Operand1: 3, Operand2: 4, Operator: OpMul, Answer: 12}, "3 × 4 = ?"},
		{"division", Equation{Operand1: 36, Operand2: 6, Operator: OpDiv, Answer: 6}, "36 ÷ 6 = ?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.eq.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
