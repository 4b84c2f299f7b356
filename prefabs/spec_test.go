package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadArenaSpec(t *testing.T) {
	spec, err := LoadArenaSpec()
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}
	if spec.World.Width != 1280 || spec.World.Height != 720 {
		t.Fatalf("unexpected world size %vx%v", spec.World.Width, spec.World.Height)
	}
	if spec.World.SpawnMarginX != 100 || spec.World.SpawnMarginY != 50 {
		t.Fatalf("unexpected margins %+v", spec.World)
	}
	if spec.Population.Enemies != 3 || spec.Population.MeteorsMin != 2 || spec.Population.MeteorsMax != 3 {
		t.Fatalf("unexpected population %+v", spec.Population)
	}
}

func TestArenaSpecValidate(t *testing.T) {
	valid := ArenaSpec{
		World:      WorldSpec{Width: 100, Height: 100, SpawnMarginX: 10, SpawnMarginY: 10},
		Population: PopulationSpec{Enemies: 1, MeteorsMin: 1, MeteorsMax: 2},
		Bullets:    BulletPoolSpec{PoolSize: 4},
	}

	tests := []struct {
		name    string
		mutate  func(*ArenaSpec)
		wantErr bool
	}{
		{"valid", func(*ArenaSpec) {}, false},
		{"zero_width", func(s *ArenaSpec) { s.World.Width = 0 }, true},
		{"margin_too_wide", func(s *ArenaSpec) { s.World.SpawnMarginX = 60 }, true},
		{"margin_exactly_half", func(s *ArenaSpec) { s.World.SpawnMarginY = 50 }, false},
		{"meteor_range_inverted", func(s *ArenaSpec) { s.Population.MeteorsMax = 0 }, true},
		{"empty_pool", func(s *ArenaSpec) { s.Bullets.PoolSize = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := valid
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidArena) {
				t.Fatalf("expected ErrInvalidArena, got %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff4136"`, want: color.NRGBA{R: 0xff, G: 0x41, B: 0x36, A: 0xff}},
		{in: `"2ecc4080"`, want: color.NRGBA{R: 0x2e, G: 0xcc, B: 0x40, A: 0x80}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#gg0000"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got, ok := c.Color.(color.NRGBA); !ok || got != tc.want {
				t.Fatalf("got %#v, want %#v", c.Color, tc.want)
			}
		})
	}
}

func TestEntityBuildSpecs(t *testing.T) {
	for _, name := range []string{"player.yaml", "enemy.yaml", "meteor.yaml", "bullet.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			tag, err := DecodeComponentSpec[TagComponentSpec](spec.Components["tag"])
			if err != nil {
				t.Fatalf("decode tag: %v", err)
			}
			if tag.Kind+".yaml" != name {
				t.Fatalf("tag kind %q does not match %s", tag.Kind, name)
			}
			body, err := DecodeComponentSpec[PhysicsBodyComponentSpec](spec.Components["physics_body"])
			if err != nil || body.Radius <= 0 {
				t.Fatalf("physics_body radius %v err %v", body.Radius, err)
			}
		})
	}
}

func TestDecodeComponentSpecNil(t *testing.T) {
	got, err := DecodeComponentSpec[SpriteComponentSpec](nil)
	if err != nil || got != (SpriteComponentSpec{}) {
		t.Fatalf("expected zero value, got %+v err %v", got, err)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"autopilot.tengo", "scripts/autopilot.tengo", "prefabs/scripts/autopilot.tengo"} {
		data, err := LoadScript(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}
