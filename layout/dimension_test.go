package layout

import (
	"math"
	"testing"
)

func TestDimensionResolve(t *testing.T) {
	tests := map[string]struct {
		dim       Dimension
		reference float32
		want      float32
	}{
		"point ignores reference":  {PointDim(10), 200, 10},
		"percent of reference":     {PercentDim(50), 200, 100},
		"percent of undefined ref": {PercentDim(50), undefined, undefined},
		"auto is undefined":        {AutoDim(), 200, undefined},
		"undefined stays undefined": {UndefinedDim(), 200, undefined},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.dim.Resolve(tt.reference)
			if IsDefined(tt.want) {
				if !IsDefined(got) || got != tt.want {
					t.Errorf("Resolve() = %v, want %v", got, tt.want)
				}
			} else if IsDefined(got) {
				t.Errorf("Resolve() = %v, want undefined", got)
			}
		})
	}
}

func TestDimensionResolveMargin_AutoIsZero(t *testing.T) {
	if got := AutoDim().ResolveMargin(100); got != 0 {
		t.Errorf("ResolveMargin(Auto) = %v, want 0", got)
	}
	if got := PointDim(5).ResolveMargin(100); got != 5 {
		t.Errorf("ResolveMargin(Point(5)) = %v, want 5", got)
	}
}

func TestClampf(t *testing.T) {
	tests := map[string]struct {
		v, lo, hi float32
		want      float32
	}{
		"within bounds":     {50, 0, 100, 50},
		"below min":         {-10, 0, 100, 0},
		"above max":         {150, 0, 100, 100},
		"undefined lo":      {50, undefined, 100, 50},
		"undefined hi":      {50, 0, undefined, 50},
		"min over max wins": {50, 80, 40, 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := clampf(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clampf(%v,%v,%v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestIsDefined(t *testing.T) {
	if IsDefined(undefined) {
		t.Error("NaN should not be defined")
	}
	if !IsDefined(0) {
		t.Error("0 should be defined")
	}
	if IsDefined(float32(math.Inf(1))) {
		t.Error("+Inf should not be defined")
	}
}
