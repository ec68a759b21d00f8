package lucky

import "testing"

func TestDrawStaysInRange(t *testing.T) {
	src := NewSource()
	seenMin, seenMax := 101, 0
	for i := 0; i < 10000; i++ {
		n := src.Draw()
		if n < 1 || n > 100 {
			t.Fatalf("draw %d out of range: %d", i, n)
		}
		if n < seenMin {
			seenMin = n
		}
		if n > seenMax {
			seenMax = n
		}
	}
	// 10k uniform draws over 100 values reach both boundaries in practice.
	if seenMin != 1 {
		t.Errorf("never drew 1 in 10000 draws (min %d)", seenMin)
	}
	if seenMax != 100 {
		t.Errorf("never drew 100 in 10000 draws (max %d)", seenMax)
	}
}

func TestFixedAlwaysYieldsN(t *testing.T) {
	src := Fixed(7)
	for i := 0; i < 3; i++ {
		if got := src.Draw(); got != 7 {
			t.Fatalf("Fixed(7).Draw() = %d", got)
		}
	}
}
