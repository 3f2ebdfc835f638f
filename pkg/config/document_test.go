package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// TestDocument_Build_RoundTrip covers the config round-trip testable
// property: a scene document covering every geometry and material variant
// (and one camera, integrator and acceleration-structure variant, since a
// document holds one of each) deserializes without error and builds an
// arena whose shape/material counts match the document.
func TestDocument_Build_RoundTrip(t *testing.T) {
	src := `
width: 400
height: 300
samples_per_pixel: 16
background: [0.5, 0.7, 1.0]
acceleration_structure:
  type: bvh
camera:
  type: thin_lens
  look_from: [0, 1, 5]
  look_at: [0, 0, 0]
  up: [0, 1, 0]
  fov: 40
  aperture: 0.1
  focus_distance: 5
integrator:
  type: whitted
  max_depth: 8
objects:
  - geometry:
      type: sphere
      center: [0, 0, -1]
      radius: 0.5
    material:
      type: diffuse
      albedo: [0.7, 0.3, 0.3]
  - geometry:
      type: triangle
      vertices:
        - [0, 0, -1]
        - [0, 3, -1]
        - [3, 0, -1]
      handedness: counter_clockwise
    material:
      type: mirror
      perturbation: 0.2
      albedo: [0.8, 0.8, 0.9]
  - geometry:
      type: sphere
      center: [2, 0, -3]
      radius: 1.0
    material:
      type: dielectric
      refraction_index: 1.5
`
	var doc Document
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	scene, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if scene.Width != 400 || scene.Height != 300 {
		t.Errorf("resolution = %dx%d, want 400x300", scene.Width, scene.Height)
	}
	if scene.SamplesPerPixel != 16 {
		t.Errorf("SamplesPerPixel = %d, want 16", scene.SamplesPerPixel)
	}
	if len(scene.Core.Objects) != len(doc.Objects) {
		t.Errorf("len(Objects) = %d, want %d", len(scene.Core.Objects), len(doc.Objects))
	}
	if scene.Core.Camera == nil {
		t.Error("Camera is nil")
	}
	if scene.Core.Integrator == nil {
		t.Error("Integrator is nil")
	}
	if scene.Core.Accel == nil {
		t.Error("Accel is nil")
	}
}

func TestDocument_Build_MissingWidth(t *testing.T) {
	src := `
height: 300
samples_per_pixel: 16
background: [0, 0, 0]
camera:
  type: basic_pinhole
  origin: [0, 0, 0]
  horizontal: [4, 0, 0]
  vertical: [0, 2, 0]
  lower_left: [-2, -1, -1]
integrator:
  type: normal
`
	var doc Document
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	_, err := doc.Build()
	if err == nil {
		t.Fatal("Build() error = nil, want a ValidationError for the missing width field")
	}
	var valErr *ValidationError
	if !asValidationError(err, &valErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if valErr.Field != "width" {
		t.Errorf("Field = %q, want %q", valErr.Field, "width")
	}
}

func TestDocument_Build_UnknownGeometryType(t *testing.T) {
	src := `
width: 10
height: 10
samples_per_pixel: 1
background: [0, 0, 0]
camera:
  type: basic_pinhole
  origin: [0, 0, 0]
  horizontal: [4, 0, 0]
  vertical: [0, 2, 0]
  lower_left: [-2, -1, -1]
integrator:
  type: normal
objects:
  - geometry:
      type: cone
    material:
      type: diffuse
      albedo: [1, 1, 1]
`
	var doc Document
	err := yaml.Unmarshal([]byte(src), &doc)
	if err == nil {
		t.Fatal("yaml.Unmarshal() error = nil, want an error for the unrecognized geometry type")
	}
}

func asValidationError(err error, target **ValidationError) bool {
	if ve, ok := err.(*ValidationError); ok {
		*target = ve
		return true
	}
	return false
}
