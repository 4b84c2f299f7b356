package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec is the session tuning loaded from arena.yaml.
type ArenaSpec struct {
	Name       string         `yaml:"name"`
	World      WorldSpec      `yaml:"world"`
	Population PopulationSpec `yaml:"population"`
	Bullets    BulletPoolSpec `yaml:"bullets"`
	Scores     ScoresSpec     `yaml:"scores"`
}

type WorldSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnMarginX float64 `yaml:"spawn_margin_x"`
	SpawnMarginY float64 `yaml:"spawn_margin_y"`
}

type PopulationSpec struct {
	Enemies    int `yaml:"enemies"`
	MeteorsMin int `yaml:"meteors_min"`
	MeteorsMax int `yaml:"meteors_max"`
}

type BulletPoolSpec struct {
	PoolSize int `yaml:"pool_size"`
}

type ScoresSpec struct {
	File string `yaml:"file"`
}

var ErrInvalidArena = errors.New("prefabs: invalid arena spec")

func LoadArenaSpec() (ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return spec, err
	}
	return spec, spec.Validate()
}

// Validate reports settings that would leave no room to spawn.
func (s ArenaSpec) Validate() error {
	w := s.World
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidArena, w.Width, w.Height)
	case w.SpawnMarginX < 0 || w.SpawnMarginY < 0:
		return fmt.Errorf("%w: negative spawn margin", ErrInvalidArena)
	case 2*w.SpawnMarginX > w.Width || 2*w.SpawnMarginY > w.Height:
		return fmt.Errorf("%w: spawn margins %v,%v leave no interior", ErrInvalidArena, w.SpawnMarginX, w.SpawnMarginY)
	case s.Population.Enemies < 0 || s.Population.MeteorsMin < 0 || s.Population.MeteorsMax < s.Population.MeteorsMin:
		return fmt.Errorf("%w: population %+v", ErrInvalidArena, s.Population)
	case s.Bullets.PoolSize <= 0:
		return fmt.Errorf("%w: bullet pool size %d", ErrInvalidArena, s.Bullets.PoolSize)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
