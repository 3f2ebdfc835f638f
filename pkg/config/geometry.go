package config

import (
	"gopkg.in/yaml.v3"

	"github.com/afnanenayet/nib/pkg/core"
	"github.com/afnanenayet/nib/pkg/geometry"
)

// Geometry is the tagged-union interface every geometry document variant
// satisfies: build constructs the concrete core.Shape it describes.
type Geometry interface {
	build() (core.Shape, error)
}

// geometryField wraps a Geometry so it can be unmarshaled through a
// `type:` discriminator, the pattern every tagged-union field in this
// package follows.
type geometryField struct {
	Value Geometry
}

type geometryProbe struct {
	Type string `yaml:"type"`
}

func (f *geometryField) UnmarshalYAML(node *yaml.Node) error {
	var probe geometryProbe
	if err := node.Decode(&probe); err != nil {
		return err
	}
	switch probe.Type {
	case "sphere":
		var doc sphereDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	case "triangle":
		var doc triangleDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	default:
		return unknownType("objects[].geometry.type", probe.Type)
	}
	return nil
}

// sphereDoc is the YAML form of `Sphere{center, radius}`.
type sphereDoc struct {
	Center vec3Doc `yaml:"center"`
	Radius *float64 `yaml:"radius"`
}

func (d *sphereDoc) build() (core.Shape, error) {
	if d.Radius == nil {
		return nil, missingField("objects[].geometry.radius")
	}
	return geometry.NewSphere(d.Center.toVec3(), *d.Radius), nil
}

// triangleDoc is the YAML form of `Triangle{vertices[3], handedness}`.
type triangleDoc struct {
	Vertices   [3]vec3Doc `yaml:"vertices"`
	Handedness string     `yaml:"handedness"`
}

func (d *triangleDoc) build() (core.Shape, error) {
	handedness := geometry.CounterClockwise
	switch d.Handedness {
	case "", "counter_clockwise":
		handedness = geometry.CounterClockwise
	case "clockwise":
		handedness = geometry.Clockwise
	default:
		return nil, unknownType("objects[].geometry.handedness", d.Handedness)
	}
	return geometry.NewTriangle(
		d.Vertices[0].toVec3(),
		d.Vertices[1].toVec3(),
		d.Vertices[2].toVec3(),
		handedness,
	), nil
}
