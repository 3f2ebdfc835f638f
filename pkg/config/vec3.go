package config

import (
	"github.com/afnanenayet/nib/pkg/core"
)

// vec3Doc is the YAML representation of a Vec3: a 3-element flow sequence,
// e.g. `[0, 1, -1]`.
type vec3Doc [3]float64

func (v vec3Doc) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
