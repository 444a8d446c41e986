package mask

import "testing"

func intPtr(v int) *int { return &v }

// TestResolveFractionDigits tests legacy/override resolution and the
// max >= min guarantee
func TestResolveFractionDigits(t *testing.T) {
	tests := []struct {
		name    string
		legacy  *int
		minO    *int
		maxO    *int
		wantMin int
		wantMax int
	}{
		{name: "all nil uses default", wantMin: 2, wantMax: 2},
		{name: "legacy sets both", legacy: intPtr(3), wantMin: 3, wantMax: 3},
		{name: "legacy zero", legacy: intPtr(0), wantMin: 0, wantMax: 0},
		{name: "min override wins over legacy", legacy: intPtr(2), minO: intPtr(0), wantMin: 0, wantMax: 2},
		{name: "max override wins over legacy", legacy: intPtr(2), maxO: intPtr(4), wantMin: 2, wantMax: 4},
		{name: "max raised to min", minO: intPtr(3), maxO: intPtr(1), wantMin: 3, wantMax: 3},
		{name: "negative min floored to zero", minO: intPtr(-1), wantMin: 0, wantMax: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := ResolveFractionDigits(tt.legacy, tt.minO, tt.maxO)
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("got (%d, %d), want (%d, %d)", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestResolveFractionRange(t *testing.T) {
	min, max := ResolveFractionRange(FormatOptions{LegacyFractionDigits: intPtr(1), MaxFractionDigits: intPtr(3)})
	if min != 1 || max != 3 {
		t.Errorf("got (%d, %d), want (1, 3)", min, max)
	}
}
