package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TagComponentSpec struct {
	Kind string `yaml:"kind"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Hidden bool    `yaml:"hidden"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type PhysicsBodyComponentSpec struct {
	Radius        float64 `yaml:"radius"`
	ClampToBounds bool    `yaml:"clamp_to_bounds"`
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type BulletComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

type SpawnVelocityComponentSpec struct {
	Range float64 `yaml:"range"`
}

type LifeBarComponentSpec struct {
	MaxWidth float64   `yaml:"max_width"`
	Height   float64   `yaml:"height"`
	OffsetX  float64   `yaml:"offset_x"`
	OffsetY  float64   `yaml:"offset_y"`
	Color    YAMLColor `yaml:"color"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

type PersistentComponentSpec struct {
	ID           string `yaml:"id"`
	KeepOnReload bool   `yaml:"keep_on_reload"`
}
