package config

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/afnanenayet/nib/pkg/geometry"
)

func TestGeometryField_Sphere(t *testing.T) {
	src := `
type: sphere
center: [1, 2, 3]
radius: 0.5
`
	var f geometryField
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	shape, err := f.Value.build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if _, ok := shape.(*geometry.Sphere); !ok {
		t.Errorf("shape type = %T, want *geometry.Sphere", shape)
	}
}

func TestGeometryField_Sphere_MissingRadius(t *testing.T) {
	src := `
type: sphere
center: [1, 2, 3]
`
	var f geometryField
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, err := f.Value.build(); err == nil {
		t.Fatal("build() error = nil, want a missing-field error")
	}
}

func TestGeometryField_Triangle_DefaultHandedness(t *testing.T) {
	src := `
type: triangle
vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0, 1, 0]
`
	var f geometryField
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	shape, err := f.Value.build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if _, ok := shape.(*geometry.Triangle); !ok {
		t.Errorf("shape type = %T, want *geometry.Triangle", shape)
	}
}

func TestGeometryField_Triangle_UnknownHandedness(t *testing.T) {
	src := `
type: triangle
vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0, 1, 0]
handedness: inside_out
`
	var f geometryField
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, err := f.Value.build(); err == nil {
		t.Fatal("build() error = nil, want an unknown-type error")
	}
}

func TestGeometryField_UnknownType(t *testing.T) {
	src := `type: torus`
	var f geometryField
	if err := yaml.Unmarshal([]byte(src), &f); err == nil {
		t.Fatal("Unmarshal() error = nil, want an unknown-type error")
	}
}
