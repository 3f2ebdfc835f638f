package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))

	tests := []struct {
		name string
		t    float64
		want Vec3
	}{
		{"origin", 0, NewVec3(0, 0, 0)},
		{"unit step", 1, NewVec3(1, 0, 0)},
		{"negative", -2, NewVec3(-2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.At(tt.t)
			if diff := cmp.Diff(tt.want, got, approxOpt); diff != "" {
				t.Errorf("At(%v) mismatch (-want +got):\n%s", tt.t, diff)
			}
		})
	}
}
