package testbed

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kinetic/engine/core"
	"github.com/spaghettifunk/kinetic/engine/graphics"
	"github.com/spaghettifunk/kinetic/engine/physics"
	"github.com/spaghettifunk/kinetic/engine/scene"
	"github.com/spaghettifunk/kinetic/engine/scene/raylib"
)

// Testbed couples a physics world to the visualization stack and drives the
// frame loop: input, optional scenario update, node refresh, render.
type Testbed struct {
	config   *Config
	world    *physics.World
	backend  *raylib.Backend
	window   *scene.Window
	graphics *graphics.GraphicsManager
	clock    *core.Clock
	metrics  *core.Metrics

	drawAxes bool
	update   func(deltaTime float32)

	// Index into world.Bodies() of the highlighted body, -1 for none.
	selected int
}

// New assembles a testbed for the given world; every body already in the
// world is registered with the graphics manager.
func New(world *physics.World, config *Config) *Testbed {
	core.SetLogLevel(config.LogLevel)

	backend := raylib.NewBackend(config.Window.Title, config.Window.Width, config.Window.Height, config.Window.FovY)
	window := scene.NewWindow(backend)
	manager := graphics.NewGraphicsManager()

	t := &Testbed{
		config:   config,
		world:    world,
		backend:  backend,
		window:   window,
		graphics: manager,
		clock:    core.NewClock(),
		metrics:  core.NewMetrics(),
		drawAxes: config.DrawAxes,
		selected: -1,
	}

	for _, rb := range world.Bodies() {
		manager.Add(window, rb)
	}

	t.LookAt(
		mgl32.Vec3{config.Camera.Eye[0], config.Camera.Eye[1], config.Camera.Eye[2]},
		mgl32.Vec3{config.Camera.At[0], config.Camera.At[1], config.Camera.At[2]},
	)
	return t
}

// NewFromScene builds the named scene into a fresh world and assembles a
// testbed around it, starting the camera where the scene wants it.
func NewFromScene(name string, config *Config) (*Testbed, error) {
	sc, ok := Scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene '%s'", name)
	}

	world := physics.NewWorld()
	sc.Build(world)

	config.Camera.Eye = [3]float32{sc.Eye.X(), sc.Eye.Y(), sc.Eye.Z()}
	config.Camera.At = [3]float32{sc.At.X(), sc.At.Y(), sc.At.Z()}

	return New(world, config), nil
}

func (t *Testbed) World() *physics.World {
	return t.world
}

func (t *Testbed) Window() *scene.Window {
	return t.window
}

func (t *Testbed) Graphics() *graphics.GraphicsManager {
	return t.graphics
}

// LookAt points both cameras.
func (t *Testbed) LookAt(eye, at mgl32.Vec3) {
	t.graphics.LookAt(eye, at)
}

// SetUpdate installs a per-frame scenario callback, called with the frame
// delta in seconds before nodes are refreshed.
func (t *Testbed) SetUpdate(update func(deltaTime float32)) {
	t.update = update
}

// SetDrawAxes toggles the per-body axes overlay.
func (t *Testbed) SetDrawAxes(drawAxes bool) {
	t.drawAxes = drawAxes
}

// ApplyConfig applies a hot-reloaded config to the running testbed. Window
// geometry is fixed after Open; camera and overlay settings take effect
// immediately.
func (t *Testbed) ApplyConfig(config *Config) {
	core.SetLogLevel(config.LogLevel)
	t.drawAxes = config.DrawAxes
	t.LookAt(
		mgl32.Vec3{config.Camera.Eye[0], config.Camera.Eye[1], config.Camera.Eye[2]},
		mgl32.Vec3{config.Camera.At[0], config.Camera.At[1], config.Camera.At[2]},
	)
}

// Run opens the window and blocks in the frame loop until it is closed.
func (t *Testbed) Run() error {
	t.backend.Open(t.config.Window.TargetFPS)
	defer t.backend.Close()

	core.LogInfo("testbed running: %d bodies, scene objects: %d", len(t.world.Bodies()), t.window.ObjectCount())

	t.clock.Start()
	lastTime := float32(0)
	for !t.backend.ShouldClose() {
		t.clock.Update()
		now := float32(t.clock.Elapsed().Seconds())
		deltaTime := now - lastTime
		lastTime = now
		t.metrics.Update(float64(deltaTime))

		t.handleInput(deltaTime)

		if t.update != nil {
			t.update(deltaTime)
		}

		t.graphics.Draw()
		if t.drawAxes {
			t.graphics.DrawPositions(t.window)
		}

		if err := t.window.Render(t.graphics.Camera()); err != nil {
			return err
		}
	}

	core.LogInfo("testbed closed: %.2f ms avg frame, %.0f fps", t.metrics.FrameAvgMS(), t.metrics.FPS())
	return nil
}

// Metrics exposes the frame timing tracker.
func (t *Testbed) Metrics() *core.Metrics {
	return t.metrics
}

// CycleHighlight moves the visual emphasis to the next body in world order,
// wrapping around and passing through a no-selection state.
func (t *Testbed) CycleHighlight() {
	bodies := t.world.Bodies()
	if len(bodies) == 0 {
		return
	}

	if t.selected >= 0 && t.selected < len(bodies) {
		for _, n := range t.graphics.BodyToSceneNodes(bodies[t.selected]) {
			n.Unselect()
		}
	}

	t.selected++
	if t.selected >= len(bodies) {
		t.selected = -1
		return
	}
	for _, n := range t.graphics.BodyToSceneNodes(bodies[t.selected]) {
		n.Select()
	}
}

const (
	rotateSpeed float32 = 0.005
	moveSpeed   float32 = 10.0
	zoomSpeed   float32 = 1.5
)

func (t *Testbed) handleInput(deltaTime float32) {
	if rl.IsKeyPressed(rl.KeyTab) {
		t.graphics.SwitchCameras()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		t.drawAxes = !t.drawAxes
	}
	if rl.IsKeyPressed(rl.KeyH) {
		t.CycleHighlight()
	}

	switch camera := t.graphics.Camera().(type) {
	case *scene.ArcBall:
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			delta := rl.GetMouseDelta()
			camera.Rotate(delta.X*rotateSpeed, -delta.Y*rotateSpeed)
		}
		if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
			delta := rl.GetMouseDelta()
			camera.Pan(-delta.X*rotateSpeed*10, delta.Y*rotateSpeed*10)
		}
		camera.Zoom(rl.GetMouseWheelMove() * zoomSpeed)
	case *scene.FirstPerson:
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			delta := rl.GetMouseDelta()
			camera.Yaw(delta.X * rotateSpeed)
			camera.Pitch(-delta.Y * rotateSpeed)
		}
		if rl.IsKeyDown(rl.KeyW) {
			camera.MoveForward(moveSpeed * deltaTime)
		}
		if rl.IsKeyDown(rl.KeyS) {
			camera.MoveForward(-moveSpeed * deltaTime)
		}
		if rl.IsKeyDown(rl.KeyD) {
			camera.MoveRight(moveSpeed * deltaTime)
		}
		if rl.IsKeyDown(rl.KeyA) {
			camera.MoveRight(-moveSpeed * deltaTime)
		}
		if rl.IsKeyDown(rl.KeySpace) {
			camera.MoveUp(moveSpeed * deltaTime)
		}
		if rl.IsKeyDown(rl.KeyLeftShift) {
			camera.MoveUp(-moveSpeed * deltaTime)
		}
	}
}
