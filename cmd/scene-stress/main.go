package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/mono/config"
	"github.com/plus3/mono/scene"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	objectCount := flag.Int("objects", 10000, "The initial number of game objects to create.")
	maxBehaviors := flag.Int("behaviors", 5, "The maximum number of behaviors per object.")
	parallel := flag.Int("parallel", 0, "Run the update pass on this many goroutines.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	logger, err := config.NewLogger(config.LoggingConfig{Level: *logLevel, Format: "console"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting scene stress test")

	// 1. Setup world and scheduler
	world := scene.NewWorld(scene.WithLogger(logger.Named("world")))
	var opts []scene.SchedulerOption
	if *parallel > 1 {
		opts = append(opts, scene.WithParallelUpdate(*parallel))
	}
	scheduler := scene.NewScheduler(world, opts...)

	// 2. Populate the world
	logger.Info("populating world", zap.Int("objects", *objectCount))
	var respawn func(c *scene.Commands)
	respawn = func(c *scene.Commands) {
		c.Spawn("respawned", func(g *scene.GameObject) {
			attachRandom(g, rand.IntN(*maxBehaviors)+1, respawn)
		})
	}
	for range *objectCount {
		g := world.NewGameObject("object")
		attachRandom(g, rand.IntN(*maxBehaviors)+1, respawn)
	}
	jan := scene.Attach(world.NewGameObject("janitor"), &janitor{Interval: 100})
	logger.Info("population complete", zap.Int("lights", len(world.Lights())))

	// 3. Run the frame loop
	report := &Report{
		Duration:       *duration,
		Objects:        *objectCount,
		MaxBehaviors:   *maxBehaviors,
		Parallel:       *parallel,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float32(deltaTime.Seconds()))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Passes = scheduler.GetStats().Passes
	report.FinalObjects = len(world.Objects())
	report.FinalLights = len(world.Lights())
	report.PrunedLights = jan.Pruned
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")

	logger.Info("stress test complete")
}
