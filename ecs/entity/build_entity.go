package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"tag":            addTag,
	"player":         addPlayer,
	"transform":      addTransform,
	"sprite":         addSprite,
	"render_layer":   addRenderLayer,
	"physics_body":   addPhysicsBody,
	"spawn_velocity": addSpawnVelocity,
	"bullet":         addBullet,
	"life_bar":       addLifeBar,
	"audio":          addAudio,
	"persistent":     addPersistent,
}

var componentBuildOrder = []string{
	"tag",
	"player",
	"transform",
	"sprite",
	"render_layer",
	"physics_body",
	"spawn_velocity",
	"bullet",
	"life_bar",
	"audio",
	"persistent",
}

// BuildEntity creates an entity from a prefab file. Components named in
// componentBuildOrder are added first, in that order; anything else follows
// alphabetically. A failed build leaves no entity behind.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func SetEntityVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) error {
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		v = &component.Velocity{}
	}
	v.X = vx
	v.Y = vy
	return ecs.Add(w, e, component.VelocityComponent.Kind(), v)
}

type tagSpec = prefabs.TagComponentSpec

func addTag(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tagSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tag spec: %w", err)
	}
	kind, ok := component.ParseEntityKind(spec.Kind)
	if !ok {
		return fmt.Errorf("unknown entity kind %q", spec.Kind)
	}
	return ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Kind: kind})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Image == "" {
		return fmt.Errorf("sprite image is empty")
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    spec.Image,
		Width:  spec.Width,
		Height: spec.Height,
		Hidden: spec.Hidden,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

// addPhysicsBody records the collider shape only; the physics system creates
// the Chipmunk body the first time it sees the entity.
func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("physics body radius must be positive, got %v", spec.Radius)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:        spec.Radius,
		ClampToBounds: spec.ClampToBounds,
	})
}

type spawnVelocitySpec = prefabs.SpawnVelocityComponentSpec

func addSpawnVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spawnVelocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode spawn velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.SpawnVelocityComponent.Kind(), &component.SpawnVelocity{Range: spec.Range})
}

type bulletSpec = prefabs.BulletComponentSpec

func addBullet(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bulletSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bullet spec: %w", err)
	}
	return ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Slot: -1, Speed: spec.Speed})
}

type lifeBarSpec = prefabs.LifeBarComponentSpec

func addLifeBar(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lifeBarSpec](raw)
	if err != nil {
		return fmt.Errorf("decode life bar spec: %w", err)
	}
	return ecs.Add(w, e, component.LifeBarComponent.Kind(), &component.LifeBar{
		MaxWidth: spec.MaxWidth,
		Height:   spec.Height,
		OffsetX:  spec.OffsetX,
		OffsetY:  spec.OffsetY,
		Color:    spec.Color.Color,
		Width:    spec.MaxWidth,
	})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp := &component.Audio{
		Names:  make([]string, 0, len(spec.Clips)),
		Volume: make([]float64, 0, len(spec.Clips)),
		Play:   make([]bool, len(spec.Clips)),
	}
	for i, clip := range spec.Clips {
		if clip.Name == "" {
			return fmt.Errorf("audio clip %d has no name", i)
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Volume = append(comp.Volume, clip.Volume)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

type persistentSpec = prefabs.PersistentComponentSpec

func addPersistent(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[persistentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode persistent spec: %w", err)
	}
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:           spec.ID,
		KeepOnReload: spec.KeepOnReload,
	})
}
