package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

const autopilotDispatchScript = `
update(__engine, __state)
`

// Autopilot flies the player from a tengo script. It is an InputSource for
// the movement axes and queues at most one shot per frame.
//
// The script defines update(engine, state). engine exposes player_x,
// player_y, targets (array of {x, y, kind}), move(x, y) and fire(); state is
// a map that persists between frames.
type Autopilot struct {
	scriptPath string
	compiled   *tengo.Compiled
	state      *tengo.Map

	moveX, moveY float64
	fire         bool
	errors       int
}

func NewAutopilot(scriptPath string) (*Autopilot, error) {
	scriptBytes, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %q: %w", scriptPath, err)
	}

	script := tengo.NewScript([]byte(string(scriptBytes) + "\n" + autopilotDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %q: %w", scriptPath, err)
	}

	return &Autopilot{
		scriptPath: scriptPath,
		compiled:   compiled,
		state:      &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (a *Autopilot) Direction() (x, y float64) {
	if a == nil {
		return 0, 0
	}
	return a.moveX, a.moveY
}

// Fire reports and clears a pending shot request.
func (a *Autopilot) Fire() bool {
	if a == nil || !a.fire {
		return false
	}
	a.fire = false
	return true
}

// Reset forgets script state, e.g. after a session restart.
func (a *Autopilot) Reset() {
	if a == nil {
		return
	}
	a.state = &tengo.Map{Value: map[string]tengo.Object{}}
	a.moveX, a.moveY, a.fire = 0, 0, false
}

func (a *Autopilot) Update(w *ecs.World) {
	if a == nil || a.compiled == nil || w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	a.moveX, a.moveY = 0, 0
	engine := a.buildEngine(w, transform)
	if err := a.compiled.Set("__engine", engine); err != nil {
		a.report(err)
		return
	}
	if err := a.compiled.Set("__state", a.state); err != nil {
		a.report(err)
		return
	}
	if err := a.compiled.Run(); err != nil {
		a.report(err)
	}
}

func (a *Autopilot) report(err error) {
	a.errors++
	// Scripts run every frame; only the first few failures are worth logging.
	if a.errors <= 3 {
		log.Printf("autopilot: %s: %v", a.scriptPath, err)
	}
}

func (a *Autopilot) buildEngine(w *ecs.World, player *component.Transform) *tengo.ImmutableMap {
	targets := make([]tengo.Object, 0, 8)
	ecs.ForEach2(w, component.TagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tag *component.Tag, t *component.Transform) {
		if tag.Kind != component.KindEnemy && tag.Kind != component.KindMeteor {
			return
		}
		targets = append(targets, &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"x":    &tengo.Float{Value: t.X},
			"y":    &tengo.Float{Value: t.Y},
			"kind": &tengo.String{Value: tag.Kind.String()},
		}})
	})

	values := map[string]tengo.Object{
		"player_x": &tengo.Float{Value: player.X},
		"player_y": &tengo.Float{Value: player.Y},
		"targets":  &tengo.ImmutableArray{Value: targets},
	}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		a.moveX, a.moveY = x, y
		return tengo.TrueValue, nil
	}}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a.fire = true
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
