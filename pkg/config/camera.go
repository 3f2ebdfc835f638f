package config

import (
	"gopkg.in/yaml.v3"

	"github.com/afnanenayet/nib/pkg/camera"
	"github.com/afnanenayet/nib/pkg/core"
)

// Camera is the tagged-union interface every camera document variant
// satisfies. aspectRatio is threaded in at build time from the document's
// width/height rather than stored per-variant, since it is derived from
// output resolution, not a scene-authoring concern.
type Camera interface {
	build(aspectRatio float64) (core.Camera, error)
}

type cameraField struct {
	Value Camera
}

func (f *cameraField) UnmarshalYAML(node *yaml.Node) error {
	var probe geometryProbe
	if err := node.Decode(&probe); err != nil {
		return err
	}
	switch probe.Type {
	case "basic_pinhole":
		var doc basicPinholeDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	case "pinhole":
		var doc pinholeDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	case "thin_lens":
		var doc thinLensDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		f.Value = &doc
	default:
		return unknownType("camera.type", probe.Type)
	}
	return nil
}

// basicPinholeDoc is the YAML form of
// `BasicPinhole{origin,horizontal,vertical,lower_left}`.
type basicPinholeDoc struct {
	Origin     vec3Doc `yaml:"origin"`
	Horizontal vec3Doc `yaml:"horizontal"`
	Vertical   vec3Doc `yaml:"vertical"`
	LowerLeft  vec3Doc `yaml:"lower_left"`
}

func (d *basicPinholeDoc) build(aspectRatio float64) (core.Camera, error) {
	return camera.NewBasicPinhole(d.Origin.toVec3(), d.Horizontal.toVec3(), d.Vertical.toVec3(), d.LowerLeft.toVec3()), nil
}

// pinholeDoc is the YAML form of `Pinhole{target,origin,vfov,up,aspect_ratio}`.
// aspect_ratio is accepted for document fidelity but the value derived
// from width/height always wins, since the two must agree for the output
// buffer to match the camera's frame.
type pinholeDoc struct {
	Target vec3Doc `yaml:"target"`
	Origin vec3Doc `yaml:"origin"`
	VFov   float64 `yaml:"vfov"`
	Up     vec3Doc `yaml:"up"`
}

func (d *pinholeDoc) build(aspectRatio float64) (core.Camera, error) {
	if d.VFov <= 0 {
		return nil, missingField("camera.vfov")
	}
	return camera.NewPinhole(d.Origin.toVec3(), d.Target.toVec3(), d.Up.toVec3(), d.VFov, aspectRatio), nil
}

// thinLensDoc is the YAML form of
// `ThinLens{look_from,look_at,up,fov,aperture,focus_distance}`.
type thinLensDoc struct {
	LookFrom      vec3Doc `yaml:"look_from"`
	LookAt        vec3Doc `yaml:"look_at"`
	Up            vec3Doc `yaml:"up"`
	Fov           float64 `yaml:"fov"`
	Aperture      float64 `yaml:"aperture"`
	FocusDistance float64 `yaml:"focus_distance"`
}

func (d *thinLensDoc) build(aspectRatio float64) (core.Camera, error) {
	if d.Fov <= 0 {
		return nil, missingField("camera.fov")
	}
	if d.FocusDistance <= 0 {
		return nil, missingField("camera.focus_distance")
	}
	return camera.NewThinLens(d.LookFrom.toVec3(), d.LookAt.toVec3(), d.Up.toVec3(), d.Fov, aspectRatio, d.Aperture, d.FocusDistance), nil
}
