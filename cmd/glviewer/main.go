package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/behavior"
	"github.com/plus3/mono/config"
	"github.com/plus3/mono/input"
	glfwsource "github.com/plus3/mono/platform/glfw"
	"github.com/plus3/mono/render/glrender"
	"github.com/plus3/mono/scene"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "settings/config.toml", "TOML settings file.")
	model := flag.String("model", "", "OBJ model to show next to the box, relative to the assets dir.")
	skybox := flag.String("skybox", "", "Directory holding the six skybox faces, relative to the assets dir.")
	flag.Parse()

	if err := run(*configPath, *model, *skybox); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, model, skybox string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(settings.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(settings.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	device, err := glrender.NewDevice(logger)
	if err != nil {
		return err
	}
	defer device.Release()

	fbWidth, fbHeight := window.GetFramebufferSize()
	device.Viewport(fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		device.Viewport(width, height)
	})

	world := scene.NewWorld(scene.WithLogger(logger), scene.WithSettings(settings))
	opts := behavior.SpawnOptions{
		Device: device,
		Loader: asset.OBJLoader{FlipUVs: true},
	}
	if model != "" {
		opts.ModelPath = filepath.Join(settings.Paths.AssetsDir, model)
	}
	if skybox != "" {
		opts.SkyboxDir = filepath.Join(settings.Paths.AssetsDir, skybox)
	}
	behavior.SpawnScene(world, opts, filepath.Join(settings.Paths.SettingsDir, "lights.yaml"))

	source := glfwsource.NewSource(logger)
	source.Install(window)
	scheduler := scene.NewScheduler(world, scene.WithInput(input.NewSampler(), source))

	logger.Info("glviewer started",
		zap.Int("objects", len(world.Objects())),
		zap.Int("lights", len(world.Lights())))

	runLoop(window, device, scheduler, source)

	world.Clear()
	logger.Info("glviewer stopped", zap.Int64("frames", scheduler.GetStats().Frames))
	return nil
}

func setupWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

func runLoop(window *glfw.Window, device *glrender.Device, s *scene.Scheduler, source *glfwsource.Source) {
	world := s.World()
	timing := world.Settings().Time
	locked := source.SyncCursor(window, world.MouseLocked(), !world.MouseLocked())

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if timing.Fixed {
			dt = timing.Delta
		}

		device.Clear(0.08, 0.09, 0.11)
		s.Once(dt)

		locked = source.SyncCursor(window, world.MouseLocked(), locked)
		if s.Input().IsDown(input.KeyEscape) {
			window.SetShouldClose(true)
		}

		window.SwapBuffers()
	}
}
