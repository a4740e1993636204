package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/knight/internal/application/game"
	"github.com/younwookim/knight/internal/application/replay"
	"github.com/younwookim/knight/internal/application/scene/director"
	"github.com/younwookim/knight/internal/application/system"
	"github.com/younwookim/knight/internal/infrastructure/config"
	"github.com/younwookim/knight/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir  string
	stage      string
	recordPath string
	replayPath string
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: built-in configs)")
	flag.StringVar(&opts.stage, "stage", "meadow", "Stage to play")
	flag.StringVar(&opts.recordPath, "record", "", "Record input to file (e.g., -record replay.json, or auto)")
	flag.StringVar(&opts.replayPath, "replay", "", "Play back a recorded input file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if opts.recordPath == "auto" {
		opts.recordPath = replay.GenerateFilename()
	}

	log := logging.New(*logLevel, os.Stderr)
	if err := run(opts, log); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}

func run(opts options, log zerolog.Logger) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	input, recorder, stageName, err := newInput(opts, cfg, log)
	if err != nil {
		return err
	}

	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		return fmt.Errorf("failed to load stage: %w", err)
	}

	first, err := director.New(cfg, stageCfg, input, log).Menu()
	if err != nil {
		return err
	}

	display := cfg.Settings.Display
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	g := game.New(first, display.ScreenWidth, display.ScreenHeight, logging.Component(log, "game"))
	g.SetDT(1.0 / float64(framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(framerate)

	// Run game; a scene returning ebiten.Termination ends it without error
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(opts.recordPath); err != nil {
			log.Error().Err(err).Msg("failed to save recording")
		} else {
			log.Info().Str("file", opts.recordPath).Int("frames", recorder.FrameCount()).Msg("recording saved")
		}
	}

	return runErr
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newInput picks the keyboard or a replay file as the input source and
// wraps it in a recorder when requested. A replay overrides the stage
// with the one it was recorded on.
func newInput(opts options, cfg *config.GameConfig, log zerolog.Logger) (system.InputReader, *replay.Recorder, string, error) {
	stage := opts.stage
	var input system.InputReader = system.NewInputSystem(&cfg.Settings.Knight)

	if opts.replayPath != "" {
		data, err := replay.LoadReplay(opts.replayPath)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to load replay: %w", err)
		}
		if data.Stage != "" && data.Stage != stage {
			log.Warn().Str("requested", stage).Str("recorded", data.Stage).Msg("replay overrides stage")
			stage = data.Stage
		}
		input = replay.NewReplayer(*data)
		log.Info().Str("file", opts.replayPath).Int("frames", len(data.Frames)).Msg("replaying input")
	}

	var recorder *replay.Recorder
	if opts.recordPath != "" {
		recorder = replay.NewRecorder(input, stage)
		input = recorder
		log.Info().Str("file", opts.recordPath).Msg("recording enabled")
	}

	return input, recorder, stage, nil
}
