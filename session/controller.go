package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/prefabs"
)

var (
	ErrNotInitialized     = errors.New("session: not initialized")
	ErrAlreadyInitialized = errors.New("session: already initialized")
	ErrNotGameOver        = errors.New("session: restart is only allowed after game over")
)

type Options struct {
	// Arena defaults to prefabs/arena.yaml when left zero.
	Arena prefabs.ArenaSpec
	Seed  uint64
	Store HighScoreStore

	// Input drives the player. A source that is also an ecs.System is
	// updated at the start of every simulated frame.
	Input system.InputSource
	Sound system.SoundPlayer
}

// Controller owns the world and the session state machine. Simulation
// systems run only while Playing; presentation systems (life bar, audio)
// run on every step so cues still fire after the world freezes.
type Controller struct {
	opts  Options
	world *ecs.World
	state State
	store HighScoreStore

	spawner *system.Spawner
	pool    *system.BulletPool
	physics *system.PhysicsSystem
	input   *system.InputSystem
	pilot   ecs.System

	simulation   *ecs.Scheduler
	presentation *ecs.Scheduler

	player      ecs.Entity
	initialized bool
	restarts    int
}

func New(opts Options) *Controller {
	store := opts.Store
	if store == nil {
		store = &MemoryStore{}
	}
	return &Controller{opts: opts, store: store}
}

// Initialize builds the world and enters Playing. It fails only when prefab
// data cannot be loaded.
func (c *Controller) Initialize() error {
	if c.initialized {
		return ErrAlreadyInitialized
	}

	if c.opts.Arena.World.Width == 0 {
		spec, err := prefabs.LoadArenaSpec()
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		c.opts.Arena = spec
	}

	w := ecs.NewWorld()
	if _, err := entity.NewArena(w, c.opts.Arena); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	player, err := entity.NewPlayer(w, c.opts.Arena.World.Width/2, c.opts.Arena.World.Height/2)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	pool, err := system.NewBulletPool(w, c.opts.Arena.Bullets.PoolSize)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	c.world = w
	c.player = player
	c.pool = pool
	c.spawner = system.NewSpawner(c.opts.Seed)
	c.physics = system.NewPhysicsSystem()
	c.input = system.NewInputSystem(c.opts.Input)

	c.pilot, _ = c.opts.Input.(ecs.System)

	c.simulation = ecs.NewScheduler()
	c.simulation.Add(ecs.SystemFunc(c.updatePilot))
	c.simulation.Add(c.input)
	c.simulation.Add(system.NewPlayerControllerSystem())
	c.simulation.Add(c.physics)
	c.simulation.Add(system.NewCombatSystem(c.spawner, pool, outcomes{c}))

	c.presentation = ecs.NewScheduler(
		system.NewLifeBarSystem(),
		system.NewAudioSystem(c.opts.Sound),
	)

	if err := c.spawner.Populate(w, c.opts.Arena.Population); err != nil {
		return fmt.Errorf("session: populate: %w", err)
	}

	c.state = State{HighScore: c.loadHighScore(), Phase: Playing}
	system.RefreshLifeBar(w, player)
	c.initialized = true
	log.Printf("session: started seed=%d high=%d", c.opts.Seed, c.state.HighScore)
	return nil
}

func (c *Controller) loadHighScore() int {
	score, err := c.store.Load()
	if err != nil {
		log.Printf("session: %v; high score defaults to 0", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

// SetInput swaps the input collaborator. It takes effect on the next step.
func (c *Controller) SetInput(source system.InputSource) {
	c.opts.Input = source
	c.pilot, _ = source.(ecs.System)
	if c.input != nil {
		c.input.SetSource(source)
	}
}

func (c *Controller) updatePilot(w *ecs.World) {
	if c.pilot != nil {
		c.pilot.Update(w)
	}
}

// Step advances one frame. The world only moves while Playing.
func (c *Controller) Step(dt float64) {
	if !c.initialized {
		return
	}
	if c.state.Phase == Playing {
		c.world.Tick(dt)
		c.simulation.Update(c.world)
	}
	c.presentation.Update(c.world)
}

// Pause reports whether the session moved from Playing to Paused.
func (c *Controller) Pause() bool {
	if !c.initialized || c.state.Phase != Playing {
		return false
	}
	c.state.Phase = Paused
	return true
}

// Resume reports whether the session moved from Paused to Playing.
func (c *Controller) Resume() bool {
	if !c.initialized || c.state.Phase != Paused {
		return false
	}
	c.state.Phase = Playing
	return true
}

// Restart rebuilds the session after game over. The player and the bullet
// pool are reset in place; every other entity is discarded and the opening
// wave is spawned again.
func (c *Controller) Restart() error {
	if !c.initialized {
		return ErrNotInitialized
	}
	if c.state.Phase != GameOver {
		return ErrNotGameOver
	}

	pruneForRestart(c.world)
	c.world.Events().Clear()
	c.physics.Reset()
	c.pool.ReleaseAll(c.world)
	if err := entity.ResetPlayer(c.world, c.player); err != nil {
		return fmt.Errorf("session: restart: %w", err)
	}
	if r, ok := c.pilot.(interface{ Reset() }); ok {
		r.Reset()
	}
	if err := c.spawner.Populate(c.world, c.opts.Arena.Population); err != nil {
		return fmt.Errorf("session: restart: %w", err)
	}

	c.state.Score = 0
	c.state.Phase = Playing
	c.restarts++
	system.RefreshLifeBar(c.world, c.player)
	log.Printf("session: restart #%d", c.restarts)
	return nil
}

// Shoot fires one bullet from the player. It does nothing unless Playing,
// and an exhausted pool is not an error.
func (c *Controller) Shoot() bool {
	if !c.initialized || c.state.Phase != Playing {
		return false
	}
	t, ok := ecs.Get(c.world, c.player, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	bullet, ok := c.pool.Acquire(c.world)
	if !ok {
		return false
	}

	speed := 300.0
	if b, ok := ecs.Get(c.world, bullet, component.BulletComponent.Kind()); ok && b.Speed > 0 {
		speed = b.Speed
	}
	if err := entity.SetEntityTransform(c.world, bullet, t.X, t.Y); err != nil {
		c.pool.Release(c.world, bullet)
		return false
	}
	if err := entity.SetEntityVelocity(c.world, bullet, 0, -speed); err != nil {
		c.pool.Release(c.world, bullet)
		return false
	}
	c.playSound("shoot")
	return true
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) World() *ecs.World {
	return c.world
}

func (c *Controller) Player() ecs.Entity {
	return c.player
}

func (c *Controller) Pool() *system.BulletPool {
	return c.pool
}

func (c *Controller) Restarts() int {
	return c.restarts
}

// Population returns the live enemy and meteor counts.
func (c *Controller) Population() (enemies, meteors int) {
	if c.world == nil {
		return 0, 0
	}
	ecs.ForEach(c.world, component.TagComponent.Kind(), func(_ ecs.Entity, tag *component.Tag) {
		switch tag.Kind {
		case component.KindEnemy:
			enemies++
		case component.KindMeteor:
			meteors++
		}
	})
	return enemies, meteors
}

func (c *Controller) addScore(points int) {
	if c.state.Phase != Playing || points <= 0 {
		return
	}
	c.state.Score += points
}

func (c *Controller) enterGameOver() {
	if c.state.Phase != Playing {
		return
	}
	c.state.Phase = GameOver

	if c.state.Score > c.state.HighScore {
		c.state.HighScore = c.state.Score
		if err := c.store.Save(c.state.HighScore); err != nil {
			log.Printf("session: save high score: %v", err)
		}
	}

	entity.DisablePlayer(c.world, c.player)
	c.playSound("game_over")
	log.Printf("session: game over score=%d high=%d", c.state.Score, c.state.HighScore)
}

func (c *Controller) playSound(name string) {
	if a, ok := ecs.Get(c.world, c.player, component.AudioComponent.Kind()); ok {
		a.Request(name)
	}
}

// outcomes adapts the controller to system.CombatListener without putting
// the callbacks on the controller's public surface.
type outcomes struct {
	c *Controller
}

func (o outcomes) AddScore(points int) { o.c.addScore(points) }
func (o outcomes) PlayerDefeated()     { o.c.enterGameOver() }

// pruneForRestart destroys every entity not marked to survive a restart.
func pruneForRestart(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		p, ok := ecs.Get(w, e, component.PersistentComponent.Kind())
		if ok && p.KeepOnReload {
			continue
		}
		ecs.DestroyEntity(w, e)
	}
}
