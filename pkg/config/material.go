package config

import (
	"gopkg.in/yaml.v3"

	"github.com/afnanenayet/nib/pkg/core"
	"github.com/afnanenayet/nib/pkg/material"
)

// Material is the tagged-union interface every material document variant
// satisfies.
type Material interface {
	build() (core.Material, error)
}

type materialField struct {
	Value Material
}

func (f *materialField) UnmarshalYAML(node *yaml.Node) error {
	var probe geometryProbe
	if err := node.Decode(&probe); err != nil {
		return err
	}
	switch probe.Type {
	case "diffuse":
		var doc diffuseDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	case "mirror":
		var doc mirrorDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	case "dielectric":
		var doc dielectricDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	default:
		return unknownType("objects[].material.type", probe.Type)
	}
	return nil
}

// diffuseDoc is the YAML form of `Diffuse{albedo}`. Albedo components are
// validated to [0,1] here, at parse time, rather than on the render hot
// path.
type diffuseDoc struct {
	Albedo vec3Doc `yaml:"albedo"`
}

func (d *diffuseDoc) build() (core.Material, error) {
	albedo := d.Albedo.toVec3()
	if err := validateUnitRange("objects[].material.albedo", albedo); err != nil {
		return nil, err
	}
	return material.NewDiffuse(albedo), nil
}

// mirrorDoc is the YAML form of `Mirror{perturbation, albedo}`.
type mirrorDoc struct {
	Perturbation float64 `yaml:"perturbation"`
	Albedo       vec3Doc `yaml:"albedo"`
}

func (d *mirrorDoc) build() (core.Material, error) {
	albedo := d.Albedo.toVec3()
	if err := validateUnitRange("objects[].material.albedo", albedo); err != nil {
		return nil, err
	}
	return material.NewMirror(albedo, d.Perturbation), nil
}

// dielectricDoc is the YAML form of `Dielectric{refraction_index, albedo?}`;
// albedo (tint) defaults to white when absent.
type dielectricDoc struct {
	RefractionIndex *float64 `yaml:"refraction_index"`
	Albedo          *vec3Doc `yaml:"albedo"`
}

func (d *dielectricDoc) build() (core.Material, error) {
	if d.RefractionIndex == nil {
		return nil, missingField("objects[].material.refraction_index")
	}
	if d.Albedo == nil {
		return material.NewDielectric(*d.RefractionIndex), nil
	}
	tint := d.Albedo.toVec3()
	if err := validateUnitRange("objects[].material.albedo", tint); err != nil {
		return nil, err
	}
	return material.NewTintedDielectric(*d.RefractionIndex, tint), nil
}

func validateUnitRange(field string, v core.Vec3) error {
	if v.X < 0 || v.X > 1 || v.Y < 0 || v.Y > 1 || v.Z < 0 || v.Z > 1 {
		return &ValidationError{Field: field, Reason: "components must lie in [0,1]"}
	}
	return nil
}
