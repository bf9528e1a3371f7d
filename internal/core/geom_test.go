package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge horizontal (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "resting on top (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 40, 5),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.9, 9.9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 16)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", b.Bottom())
	}
	if b.CenterX() != 15 || b.CenterY() != 18 {
		t.Errorf("Center = (%v, %v), expected (15, 18)", b.CenterX(), b.CenterY())
	}
}

func TestBoxUnion(t *testing.T) {
	u := NewBox(0, 0, 10, 10).Union(NewBox(5, -5, 20, 10))
	want := NewBox(0, -5, 25, 15)
	if u != want {
		t.Errorf("Union() = %+v, expected %+v", u, want)
	}
}

func TestBoxValid(t *testing.T) {
	if !NewBox(0, 0, 1, 1).Valid() {
		t.Error("1x1 box should be valid")
	}
	if NewBox(0, 0, 0, 5).Valid() {
		t.Error("zero width box should be invalid")
	}
	if NewBox(0, 0, 5, -1).Valid() {
		t.Error("negative height box should be invalid")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{0.5, 0.5, 1.5, 0.5},
		{1.5, 0.5, 1.5, 1.5},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-3, 0, 10) != 0 {
		t.Error("ClampInt(-3, 0, 10) should be 0")
	}
	if ClampInt(30, 0, 10) != 10 {
		t.Error("ClampInt(30, 0, 10) should be 10")
	}
	if ClampInt(4, 0, 10) != 4 {
		t.Error("ClampInt(4, 0, 10) should be 4")
	}
}

func TestAbs(t *testing.T) {
	if Abs(-2.5) != 2.5 || Abs(2.5) != 2.5 {
		t.Error("Abs should drop the sign")
	}
}
