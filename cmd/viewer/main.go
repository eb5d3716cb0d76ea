package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/behavior"
	"github.com/plus3/mono/config"
	"github.com/plus3/mono/debugui"
	debugui_ebiten "github.com/plus3/mono/debugui/ebiten"
	"github.com/plus3/mono/input"
	ebitenhost "github.com/plus3/mono/platform/ebiten"
	"github.com/plus3/mono/scene"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "settings/config.toml", "TOML settings file.")
	model := flag.String("model", "", "OBJ model to show next to the box, relative to the assets dir.")
	skybox := flag.String("skybox", "", "Directory holding the six skybox faces, relative to the assets dir.")
	parallel := flag.Int("parallel", 0, "Run the update pass on this many goroutines.")
	flag.Parse()

	if err := run(*configPath, *model, *skybox, *parallel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, model, skybox string, parallel int) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(settings.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ui := debugui_ebiten.NewImguiBackend(settings.Window.Title, settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	world := scene.NewWorld(scene.WithLogger(logger), scene.WithSettings(settings))
	device := ebitenhost.NewDevice(settings.Window.Width, settings.Window.Height)

	opts := behavior.SpawnOptions{
		Device: device,
		Loader: asset.OBJLoader{},
	}
	if model != "" {
		opts.ModelPath = filepath.Join(settings.Paths.AssetsDir, model)
	}
	if skybox != "" {
		opts.SkyboxDir = filepath.Join(settings.Paths.AssetsDir, skybox)
	}
	lightsPath := filepath.Join(settings.Paths.SettingsDir, "lights.yaml")
	behavior.SpawnScene(world, opts, lightsPath)

	host := debugui.NewHost(world)
	host.Title = settings.Window.Title

	source := ebitenhost.NewSource(logger.Named("input"))
	schedOpts := []scene.SchedulerOption{
		scene.WithInput(input.NewSampler(), source),
		scene.WithDebugHost(host),
	}
	if parallel > 1 {
		schedOpts = append(schedOpts, scene.WithParallelUpdate(parallel))
	}
	scheduler := scene.NewScheduler(world, schedOpts...)
	debugui.NewTools().Install(host, world, scheduler.GetStats)

	game := ebitenhost.NewGame(scheduler, source, device, ui, host)

	logger.Info("viewer started",
		zap.Int("objects", len(world.Objects())),
		zap.Int("lights", len(world.Lights())),
		zap.String("model", opts.ModelPath),
		zap.String("skybox", opts.SkyboxDir))

	err = ebiten.RunGame(game)
	world.Clear()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run viewer: %w", err)
	}
	logger.Info("viewer stopped", zap.Int64("frames", scheduler.GetStats().Frames))
	return nil
}
