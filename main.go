// Command mazegame plays the maze game in a terminal.
//
// It supports three commands:
//  1. "play" (default) – draws the maze with tcell and steers the player with the arrow keys or h/j/k/l
//  2. "simulate" – runs a seeded game headless and prints one trajectory line per tick
//  3. "mazes" – lists the maze files in the config directory
//
// Flags choose the maze, the random seed, the tick interval, sound, debug
// logging and an optional log file. Every flag can also be set from the
// environment or a .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Maze Game"
)

// DefaultConfigDir is where maze files are looked up
const DefaultConfigDir = "configs"

// logFile is the open --log-file, closed by the After hook
var logFile io.Closer

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "mazegame",
		Usage:   "eat every dot while the ghosts wander",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   DefaultConfigDir,
				Usage:   "directory containing maze files",
				Sources: cli.EnvVars("MAZE_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "maze",
				Aliases: []string{"m"},
				Usage:   "maze name in the config directory, or a path to a maze file",
				Sources: cli.EnvVars("MAZE_NAME"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed for ghost movement (default: the maze's seed, else the clock)",
				Sources: cli.EnvVars("MAZE_SEED"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Usage:   "time between simulation steps (default: the maze's interval, else 200ms)",
				Sources: cli.EnvVars("MAZE_TICK"),
			},
			&cli.BoolFlag{
				Name:    "sound",
				Usage:   "chime when dots and power-pills are eaten",
				Sources: cli.EnvVars("MAZE_SOUND"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("MAZE_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file (play mode discards logs otherwise)",
				Sources: cli.EnvVars("MAZE_LOG_FILE"),
			},
		},
		Before: setupLogging,
		After: func(ctx context.Context, cmd *cli.Command) error {
			if logFile == nil {
				return nil
			}
			log.SetOutput(os.Stderr)
			err := logFile.Close()
			logFile = nil
			return err
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play in the terminal (default)",
				Action: playAction,
			},
			{
				Name:  "simulate",
				Usage: "run a seeded game without a screen and print the trajectory",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "ticks",
						Value: 100,
						Usage: "number of steps to run",
					},
					&cli.StringFlag{
						Name:  "steer",
						Usage: "scripted steering as tick:direction pairs, e.g. 3:north,10:east",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print one JSON object per tick",
					},
				},
				Action: simulateAction,
			},
			{
				Name:   "mazes",
				Usage:  "list the mazes in the config directory",
				Action: mazesAction,
				Commands: []*cli.Command{
					{
						Name:      "export",
						Usage:     "write the selected maze (--maze, else the default) into the config directory",
						ArgsUsage: "[NAME]",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "format",
								Value: "json",
								Usage: "file format when NAME has no extension: json or yaml",
							},
							&cli.BoolFlag{
								Name:  "force",
								Usage: "overwrite an existing file",
							},
						},
						Action: exportAction,
					},
				},
			},
		},
	}
}

// setupLogging applies --debug and --log-file before any command runs
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return ctx, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
	}
	return ctx, nil
}

// main loads .env, then runs the selected command
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file: %v", err)
		}
	} else {
		log.Debug("Loaded environment variables from .env file")
	}

	os.Exit(run(context.Background(), os.Args, os.Stderr))
}

// run executes the command line and reports a failure on stderr. Play mode
// may have silenced the logger, so errors are not left to it.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	if err := newCommand().Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", AppName, err)
		return 1
	}
	return 0
}
