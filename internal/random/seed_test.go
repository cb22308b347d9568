package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	if a == b {
		t.Errorf("two calls to NewSeed() returned the same value %d", a)
	}
}

func TestNew_FixedSeed(t *testing.T) {
	r1, used, err := New(1234)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if used != 1234 {
		t.Errorf("used seed = %d, want 1234", used)
	}
	r2, _, _ := New(1234)
	for i := 0; i < 10; i++ {
		if x, y := r1.Int63(), r2.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
}

func TestNew_ZeroSeedIsReplaced(t *testing.T) {
	r, used, err := New(0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if r == nil {
		t.Fatal("New() returned nil generator")
	}
	if used == 0 {
		// 1 in 2^64; treat as a bug in seeding.
		t.Error("New(0) kept the zero seed")
	}
}
