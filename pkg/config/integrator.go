package config

import (
	"gopkg.in/yaml.v3"

	"github.com/afnanenayet/nib/pkg/core"
	"github.com/afnanenayet/nib/pkg/integrator"
)

// Integrator is the tagged-union interface every integrator document
// variant satisfies.
type Integrator interface {
	build() (core.Integrator, error)
}

type integratorField struct {
	Value Integrator
}

func (f *integratorField) UnmarshalYAML(node *yaml.Node) error {
	var probe geometryProbe
	if err := node.Decode(&probe); err != nil {
		return err
	}
	switch probe.Type {
	case "normal":
		f.Value = &normalDoc{}
	case "whitted":
		var doc whittedDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	default:
		return unknownType("integrator.type", probe.Type)
	}
	return nil
}

// normalDoc is the YAML form of `Normal{}`.
type normalDoc struct{}

func (d *normalDoc) build() (core.Integrator, error) {
	return integrator.Normal{}, nil
}

// whittedDoc is the YAML form of `Whitted{max_depth}`.
type whittedDoc struct {
	MaxDepth *int `yaml:"max_depth"`
}

func (d *whittedDoc) build() (core.Integrator, error) {
	if d.MaxDepth == nil {
		return nil, missingField("integrator.max_depth")
	}
	return integrator.NewWhitted(*d.MaxDepth), nil
}
