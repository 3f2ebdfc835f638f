// Package config deserializes a declarative scene document (YAML) into
// the core types the renderer consumes: objects, an acceleration
// structure, a camera, an integrator, and output parameters. Each tagged
// variant (geometry, material, camera, integrator, acceleration_structure)
// resolves through a `type:` discriminator and a custom UnmarshalYAML.
package config

import "fmt"

// ValidationError reports a missing or malformed field encountered while
// building the scene from its deserialized document — a scene-construction
// error, fatal to the render.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: field %q: %s", e.Field, e.Reason)
}

func missingField(field string) error {
	return &ValidationError{Field: field, Reason: "required field is missing"}
}

func unknownType(field, kind string) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("unrecognized type %q", kind)}
}
