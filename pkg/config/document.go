package config

import (
	"strconv"

	"github.com/afnanenayet/nib/pkg/core"
)

// Document is the top-level deserialized scene description of spec.md §6:
// the object arena, an acceleration structure, a camera, a background
// color, a sample count, an integrator, and output resolution. Any
// recognized field left absent triggers a config.ValidationError when
// Build is called.
type Document struct {
	Objects               []objectDoc                `yaml:"objects"`
	AccelerationStructure accelerationStructureField `yaml:"acceleration_structure"`
	Camera                cameraField                `yaml:"camera"`
	Background            *vec3Doc                   `yaml:"background"`
	SamplesPerPixel       *int                        `yaml:"samples_per_pixel"`
	Integrator            integratorField             `yaml:"integrator"`
	Width                 *int                        `yaml:"width"`
	Height                *int                        `yaml:"height"`
}

// objectDoc is the YAML form of a single `{geometry, material}` arena entry.
type objectDoc struct {
	Geometry geometryField `yaml:"geometry"`
	Material materialField `yaml:"material"`
}

// Scene is the fully built result of Build: the core.Scene plus the
// resolution and sample count the renderer needs that core.Scene itself
// doesn't carry.
type Scene struct {
	Core            *core.Scene
	Width, Height   int
	SamplesPerPixel int
}

// Build validates every required field and constructs the core types the
// renderer consumes. It is the single place scene-construction errors
// (spec.md §7) are raised; everything downstream assumes a valid Scene.
func (doc *Document) Build() (*Scene, error) {
	if doc.Width == nil {
		return nil, missingField("width")
	}
	if doc.Height == nil {
		return nil, missingField("height")
	}
	if *doc.Width <= 0 {
		return nil, &ValidationError{Field: "width", Reason: "must be positive"}
	}
	if *doc.Height <= 0 {
		return nil, &ValidationError{Field: "height", Reason: "must be positive"}
	}
	if doc.SamplesPerPixel == nil {
		return nil, missingField("samples_per_pixel")
	}
	if *doc.SamplesPerPixel <= 0 {
		return nil, &ValidationError{Field: "samples_per_pixel", Reason: "must be positive"}
	}
	if doc.Background == nil {
		return nil, missingField("background")
	}
	if doc.Camera.Value == nil {
		return nil, missingField("camera")
	}
	if doc.Integrator.Value == nil {
		return nil, missingField("integrator")
	}
	if doc.AccelerationStructure.Value == nil {
		doc.AccelerationStructure.Value = &objectListDoc{}
	}

	objects := make([]*core.TexturedObject, 0, len(doc.Objects))
	for i, obj := range doc.Objects {
		if obj.Geometry.Value == nil {
			return nil, missingField(field("objects", i, "geometry"))
		}
		if obj.Material.Value == nil {
			return nil, missingField(field("objects", i, "material"))
		}
		shape, err := obj.Geometry.Value.build()
		if err != nil {
			return nil, err
		}
		mat, err := obj.Material.Value.build()
		if err != nil {
			return nil, err
		}
		objects = append(objects, &core.TexturedObject{Shape: shape, Material: mat})
	}

	aspectRatio := float64(*doc.Width) / float64(*doc.Height)
	cam, err := doc.Camera.Value.build(aspectRatio)
	if err != nil {
		return nil, err
	}
	integ, err := doc.Integrator.Value.build()
	if err != nil {
		return nil, err
	}

	scene := &core.Scene{
		Objects:    objects,
		Accel:      doc.AccelerationStructure.Value.build(objects),
		Camera:     cam,
		Integrator: integ,
		Background: doc.Background.toVec3(),
	}

	return &Scene{Core: scene, Width: *doc.Width, Height: *doc.Height, SamplesPerPixel: *doc.SamplesPerPixel}, nil
}

func field(base string, index int, name string) string {
	return base + "[" + strconv.Itoa(index) + "]." + name
}
