package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"vrcollab/internal/audio"
	"vrcollab/internal/camera"
	"vrcollab/internal/config"
	"vrcollab/internal/controls"
	"vrcollab/internal/engine"
	"vrcollab/internal/input"
	"vrcollab/internal/layout"
	"vrcollab/internal/physics"
	"vrcollab/internal/widget"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// App wires the interaction pipeline to a raylib window.
type App struct {
	Config   config.Config
	Scene    *engine.Scene
	Rig      *camera.Rig
	Hits     *physics.HitTester
	Focus    *widget.FocusController
	Controls *controls.Controls
	Layout   *layout.Layout
	Manip    *Manipulator
	Log      *LogPanel

	nav         *input.NavigationLock
	ui          *engine.GameObject
	feedback    *audio.Feedback
	renderer    *Renderer
	backend     backend
	showPointer bool
	showLog     bool
	wasFocused  bool
}

// New builds everything that does not need a window.
func New(conf config.Config, platform input.Platform) (*App, error) {
	a := &App{
		Config:      conf,
		Scene:       engine.NewScene("Main"),
		nav:         &input.NavigationLock{},
		Log:         NewLogPanel(conf.Window.LogLines),
		showPointer: true,
		showLog:     true,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, a.Log))

	a.Rig = camera.New(rl.Vector3{Y: 1.6, Z: 0.5})
	if conf.Window.Height > 0 {
		a.Rig.Aspect = float32(conf.Window.Width) / float32(conf.Window.Height)
	}
	a.Rig.MoveSpeed = conf.Desktop.MoveSpeed
	a.Hits = physics.NewHitTester(conf.Pointer.Near, conf.Pointer.Far)
	a.Focus = widget.NewFocusController(a.nav, conf.Text)

	adapter := input.NewAdapter(platform, conf, a.Rig, a.nav)
	a.Controls = controls.New(adapter, a.Hits)
	a.Controls.SetKeyHandler(a.Focus)
	a.Controls.SetLocomotion(a.Rig)
	a.Controls.AddListener(engine.EventControllerConnected, func(ev engine.Event) {
		if ev.Controller != nil {
			log.Printf("App: %s controller ready (%d buttons, %d axes)", ev.Controller.Hand, ev.Controller.Buttons, ev.Controller.Axes)
		}
	})

	a.ui = engine.NewGameObject("UI")
	a.Scene.AddGameObject(a.ui)

	f, err := layout.Load(conf.Layout)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	a.Layout, err = layout.Build(f, &layout.Env{
		Root:          a.ui,
		Hits:          a.Hits,
		Focus:         a.Focus,
		Teleporter:    a.Rig,
		PressDuration: conf.Button.PressDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}

	world := NewWorld()
	a.Scene.AddGameObject(world)
	a.Manip = NewManipulator(world)
	a.Manip.Bind(a.Layout)
	if box := a.Scene.FindByName("Box"); box != nil {
		a.Manip.Select(box)
	}

	log.Printf("App: %s platform, %d screens", adapter.Platform(), len(a.Layout.Composer.Screens()))
	return a, nil
}

func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.Window.Width, a.Config.Window.Height, a.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(a.Config.Window.TargetFPS)
	rl.SetExitKey(rl.KeyNull)

	a.renderer = NewRenderer()
	defer a.renderer.Unload()

	a.feedback = audio.NewFeedback(a.Config.Audio)
	defer a.feedback.Close()
	for _, obj := range a.Layout.Widgets {
		a.watch(obj)
	}

	a.backend = newBackend(a.Controls.Adapter(), a.Rig, a.overHUD)
	a.wasFocused = true
	a.Scene.Start()

	for !rl.WindowShouldClose() {
		a.Update(rl.GetFrameTime())
		a.Draw()
	}
}

// watch subscribes audio feedback to obj and the keys inside it.
func (a *App) watch(obj *engine.GameObject) {
	obj.Walk(func(g *engine.GameObject) bool {
		if engine.GetComponent[*widget.Button](g) != nil || engine.GetComponent[*widget.TextField](g) != nil {
			a.feedback.Watch(g)
		}
		return true
	})
}

func (a *App) Update(deltaTime float32) {
	// Losing window focus is an abrupt device loss: keys and buttons held
	// at that moment will never report their release.
	focused := rl.IsWindowFocused()
	if a.wasFocused && !focused {
		a.Controls.Cancel()
	}
	a.wasFocused = focused

	if w, h := rl.GetScreenWidth(), rl.GetScreenHeight(); h > 0 {
		a.Rig.Aspect = float32(w) / float32(h)
	}

	a.backend.Poll()
	a.Controls.Update(deltaTime)
	a.Focus.Update(deltaTime)
	a.Scene.Update(deltaTime)

	a.feedback.SetListener(a.Rig.Position, a.Rig.Forward())
	a.feedback.Update()
}

func (a *App) Draw() {
	cam := a.Rig.Camera3D()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	rl.DrawGrid(20, 1)
	a.renderer.DrawBodies(a.Scene, a.Manip.Target)
	a.renderer.DrawWidgets(a.ui)
	if a.showPointer {
		a.renderer.DrawPointer(a.Controls.Intersection())
	}
	rl.EndMode3D()

	a.renderer.DrawLabels(cam)
	a.DrawUI()
	rl.EndDrawing()
}

const hudWidth = 220

func (a *App) DrawUI() {
	rl.DrawText(fmt.Sprintf("Screen: %s", a.Layout.Composer.Current()), 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Pointer: %s", a.Controls.State()), 10, 35, 16, rl.LightGray)
	rl.DrawFPS(10, 55)

	x := float32(rl.GetScreenWidth() - hudWidth)
	a.showPointer = gui.CheckBox(rl.Rectangle{X: x, Y: 10, Width: 18, Height: 18}, "Pointer marker", a.showPointer)
	a.showLog = gui.CheckBox(rl.Rectangle{X: x, Y: 34, Width: 18, Height: 18}, "Log panel", a.showLog)
	a.feedback.Enabled = gui.CheckBox(rl.Rectangle{X: x, Y: 58, Width: 18, Height: 18}, "Audio", a.feedback.Enabled)
	a.feedback.Volume = gui.Slider(rl.Rectangle{X: x, Y: 82, Width: 120, Height: 18}, "", fmt.Sprintf("%.1f", a.feedback.Volume), a.feedback.Volume, 0, 1)

	if a.showLog {
		a.Log.Draw(10, int32(rl.GetScreenHeight())-10)
	}
}

// overHUD keeps clicks on the debug controls away from the scene.
func (a *App) overHUD(x, y float32) bool {
	return x >= float32(rl.GetScreenWidth()-hudWidth) && y <= 110
}
