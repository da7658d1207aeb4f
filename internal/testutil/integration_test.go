package testutil

import "testing"

func TestEvalModeMatchesGolden(t *testing.T) {
	bin := BuildBinary(t)
	out := RunBinary(t, bin, "-eval", "Apple (5) + Orange (3) * Banana (2)")
	out += RunBinary(t, bin, "-eval", "Foo (10) * Bar (0)")
	out += RunBinary(t, bin, "-eval", "just words")
	out += RunBinary(t, bin, "-eval", "Apple (5) +")
	out += RunBinary(t, bin, "-eval", "Apple (5) Banana (2)")
	AssertGolden(t, "eval.golden", out)
}
