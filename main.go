package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-frames/model"
	"github.com/sheikhrachel/go-gol-frames/render"
	"github.com/sheikhrachel/go-gol-frames/utils"
)

const (
	exitError = 1
	exitUsage = 2

	gifFrameDelay = 10 // hundredths of a second
)

var errUsage = errors.New("usage error")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	config, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Cause(err) == flag.ErrHelp {
			return
		}
		logger.Error("invalid arguments", "err", err)
		os.Exit(exitUsage)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, os.Stdout, logger); err != nil {
		logger.Error("simulation failed", "err", err)
		stop()
		os.Exit(exitError)
	}
}

func bindFlags(name string, config *utils.Config, configPath *string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(configPath, "config", *configPath, "JSON config file applied before flags")
	config.Bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] [<first_output> <current_output> <generations>]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs builds the run configuration: defaults, then the -config file,
// then flags, then the optional positional arguments
func parseArgs(name string, args []string, output io.Writer) (utils.Config, error) {
	var (
		config     = utils.DefaultConfig()
		configPath string
	)

	fs := bindFlags(name, &config, &configPath, output)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[parseArgs] failed to parse flags")
	}

	if configPath != "" {
		var err error
		if config, err = utils.LoadConfig(configPath); err != nil {
			return config, err
		}
		// flags win over the file
		fs = bindFlags(name, &config, &configPath, output)
		if err = fs.Parse(args); err != nil {
			return config, errors.Wrap(err, "[parseArgs] failed to parse flags")
		}
	}

	switch fs.NArg() {
	case 0:
	case 3:
		generations, err := strconv.Atoi(fs.Arg(2))
		if err != nil {
			return config, errors.Wrapf(errUsage, "[parseArgs] generations %q is not a number", fs.Arg(2))
		}
		config.FirstOutput = fs.Arg(0)
		config.CurrentOutput = fs.Arg(1)
		config.Generations = generations

		// an explicit -format wins over the file extension
		if format, ok := render.FormatFromPath(config.FirstOutput); ok && !flagSet(fs, "format") {
			config.Format = format
		}
	default:
		fs.Usage()
		return config, errors.Wrapf(errUsage, "[parseArgs] expected 0 or 3 arguments, got %d", fs.NArg())
	}

	return config, config.Validate()
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// buildSinks wires every configured output behind one sink
func buildSinks(config utils.Config, stdout io.Writer, status *statusSink) (render.MultiSink, error) {
	palette, err := render.NewPalette(config.AliveColor, config.DeadColor)
	if err != nil {
		return nil, err
	}
	raster := render.NewRasterizer(palette, config.Scale, config.Label)

	sinks := render.MultiSink{}
	if config.FirstOutput != "" || config.CurrentOutput != "" || config.FrameDir != "" {
		files, err := render.NewFileSink(raster, render.FileSinkOptions{
			Format:      config.Format,
			FirstPath:   config.FirstOutput,
			CurrentPath: config.CurrentOutput,
			FrameDir:    config.FrameDir,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, files)
	}
	if config.AnimationOutput != "" {
		sinks = append(sinks, render.NewGIFSink(raster, config.AnimationOutput, gifFrameDelay))
	}
	if config.Terminal {
		sinks = append(sinks, render.NewTerminalSink(stdout, true))
	}
	return append(sinks, status), nil
}

// run seeds generation 0 and drives the simulation into the configured sinks
func run(ctx context.Context, config utils.Config, stdout io.Writer, logger *slog.Logger) error {
	if err := config.Validate(); err != nil {
		return err
	}

	status := newStatusSink(stdout, logger, config.StagnationWindow)
	sinks, err := buildSinks(config, stdout, status)
	if err != nil {
		return err
	}

	rng, seed := utils.NewRNG(config.Seed)
	grid := model.NewGrid(config.Width, config.Height)
	grid.Randomize(rng, config.Density)

	logger.Info("starting simulation",
		"width", config.Width,
		"height", config.Height,
		"generations", config.Generations,
		"seed", seed,
		"workers", config.Workers,
		"living", grid.CountLivingCells(),
	)

	sim := model.NewSimulation(model.NewStepper(config.Workers), sinks)
	runErr := sim.Run(ctx, grid, config.Generations)

	// flush the animation even when the run was interrupted
	if err = sinks.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	status.summary()
	return nil
}
