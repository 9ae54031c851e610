package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"racing-sim/internal/debug"
	"racing-sim/internal/engineconfig"
	"racing-sim/internal/graphics"
	"racing-sim/internal/input"
	"racing-sim/internal/logger"
	"racing-sim/internal/primitives"
	"racing-sim/internal/scene"
	"racing-sim/internal/sim"
)

func init() {
	// raylib and GL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	_ = input.PrintLegend(os.Stdout)

	cfg, err := engineconfig.Load(engineconfig.EngineConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log, logFile, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logFile.Close()

	layout, err := scene.LoadLayout(cfg.LayoutPath)
	if err != nil {
		log.Error().Err(err).Msg("load layout")
		return 1
	}

	win, err := graphics.Open(graphics.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	})
	if err != nil {
		log.Error().Err(err).Msg("open window")
		return 1
	}
	defer win.Close()

	shader, err := graphics.LoadShader()
	if err != nil {
		log.Error().Err(err).Msg("load shader")
		return 1
	}
	defer shader.Unload()

	textures := graphics.LoadTextures(map[scene.TextureSlot]string{
		scene.SlotGround:   cfg.Textures.Ground,
		scene.SlotTrack:    cfg.Textures.Track,
		scene.SlotBody:     cfg.Textures.Body,
		scene.SlotBuilding: cfg.Textures.Building,
	}, log)
	defer textures.Unload()

	dev := graphics.NewDevice(shader, textures)
	meshes := primitives.NewRegistry(dev, log)
	if err := meshes.Warm(layout.Meshes()...); err != nil {
		log.Error().Err(err).Msg("upload meshes")
		return 1
	}

	s := sim.New(sim.Options{
		Vehicle:     cfg.VehicleParams(),
		Layout:      layout,
		Sensitivity: cfg.Mouse.Sensitivity,
	}, log)
	renderer := scene.NewRenderer(dev, meshes, logger.Sampled(log))
	hud := debug.New(cfg.ShowHUD)
	hud.ShowMemAlloc = cfg.ShowMemAlloc
	loop := sim.NewLoop(win, s, input.NewPoller(input.DefaultBindings()), renderer, hud, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Int("meshes", meshes.Len()).Str("level", log.GetLevel().String()).Msg("racing simulator ready")
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("loop")
		return 1
	}
	return 0
}
