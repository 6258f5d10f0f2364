package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mazegame/audio"
	"github.com/wricardo/mazegame/game/config"
	"github.com/wricardo/mazegame/game/engine"
	"github.com/wricardo/mazegame/game/runner"
	"github.com/wricardo/mazegame/ui/terminal"
)

// playAction runs the terminal game
func playAction(ctx context.Context, cmd *cli.Command) error {
	mazeConfig, err := loadMazeConfig(cmd.String("config-dir"), cmd.String("maze"))
	if err != nil {
		return err
	}

	seed := resolveSeed(cmd, mazeConfig)
	gameEngine, err := engine.NewEngineFromConfig(mazeConfig, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	if cmd.String("log-file") == "" {
		// the screen owns the terminal until Fini
		out := log.StandardLogger().Out
		log.SetOutput(io.Discard)
		defer log.SetOutput(out)
	}

	interval := resolveInterval(cmd, mazeConfig)
	log.WithFields(log.Fields{
		"maze":     mazeConfig.Name,
		"seed":     seed,
		"interval": interval,
	}).Info("starting game")

	r := runner.New(gameEngine, runner.WithInterval(interval), runner.WithLogger(log.StandardLogger()))

	if cmd.Bool("sound") || mazeConfig.Sound {
		chime := audio.NewChime()
		if err := chime.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Warnf("Audio initialization failed: %v", err)
		} else {
			defer chime.Close()
			r.OnTick(chime.OnTick)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, r, log.StandardLogger())
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.WithFields(log.Fields{
		"score": gameEngine.Maze().Score(),
		"ticks": gameEngine.Ticks(),
		"state": gameEngine.State().String(),
	}).Info("game finished")
	return nil
}

// simulateAction runs a headless game and prints its trajectory
func simulateAction(ctx context.Context, cmd *cli.Command) error {
	mazeConfig, err := loadMazeConfig(cmd.String("config-dir"), cmd.String("maze"))
	if err != nil {
		return err
	}

	steering, err := parseSteering(cmd.String("steer"))
	if err != nil {
		return err
	}

	seed := resolveSeed(cmd, mazeConfig)
	gameEngine, err := engine.NewEngineFromConfig(mazeConfig, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"maze":  mazeConfig.Name,
		"seed":  seed,
		"ticks": cmd.Int("ticks"),
	}).Debug("simulating")

	return simulate(cmd.Root().Writer, gameEngine, cmd.Int("ticks"), steering, cmd.Bool("json"))
}

// mazesAction lists the mazes in the config directory
func mazesAction(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	return writeMazeList(cmd.Root().Writer, configs, manager.GetDefault().Name)
}

// exportAction saves the selected maze into the config directory, creating
// the directory when needed
func exportAction(ctx context.Context, cmd *cli.Command) error {
	configDir := cmd.String("config-dir")
	mazeConfig, err := loadMazeConfig(configDir, cmd.String("maze"))
	if err != nil {
		return err
	}

	filename, err := exportFilename(cmd.Args().First(), mazeConfig.Name, cmd.String("format"))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	manager, err := config.NewManager(configDir)
	if err != nil {
		return err
	}

	path := filepath.Join(manager.ConfigDir(), filename)
	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := manager.SaveConfig(filename, mazeConfig); err != nil {
		return err
	}
	// the new file may change which maze is the default
	if err := manager.RefreshCache(); err != nil {
		return err
	}

	log.WithFields(log.Fields{"maze": mazeConfig.Name, "path": path}).Debug("maze exported")
	_, err = fmt.Fprintf(cmd.Root().Writer, "wrote %s (default maze: %s)\n", path, manager.GetDefault().Name)
	return err
}

// exportFilename picks the file name for an export. An explicit extension
// wins over format; an empty name falls back to the maze's own name.
func exportFilename(name, mazeName, format string) (string, error) {
	if name == "" {
		name = mazeName
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid maze file name %q", name)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return name, nil
	case "":
	default:
		return "", fmt.Errorf("maze file %q must end in .json, .yaml or .yml", name)
	}

	switch strings.ToLower(format) {
	case "json":
		return name + ".json", nil
	case "yaml", "yml":
		return name + ".yaml", nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", format)
}

// loadMazeConfig resolves --maze: a file path, a name in the config
// directory, or the manager's default. The built-in classic maze is used
// when there is no config directory or no classic file.
func loadMazeConfig(configDir, name string) (*engine.MazeConfig, error) {
	if filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err == nil {
			return engine.LoadMazeConfig(name)
		}
	}

	manager, err := config.NewManager(configDir)
	if err != nil {
		if name == "" || name == engine.DefaultMazeConfig().Name {
			log.WithField("config_dir", configDir).Debug("no config directory, using built-in maze")
			return engine.DefaultMazeConfig(), nil
		}
		return nil, err
	}

	if name == "" {
		return manager.GetDefault(), nil
	}

	mazeConfig, err := manager.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) && name == engine.DefaultMazeConfig().Name {
		return engine.DefaultMazeConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", name, err)
	}
	return mazeConfig, nil
}

// resolveSeed prefers --seed, then the maze's seed, then the clock
func resolveSeed(cmd *cli.Command, mazeConfig *engine.MazeConfig) int64 {
	if cmd.IsSet("seed") {
		return cmd.Int64("seed")
	}
	if mazeConfig.Seed != 0 {
		return mazeConfig.Seed
	}
	return time.Now().UnixNano()
}

// resolveInterval prefers --tick, then the maze's interval
func resolveInterval(cmd *cli.Command, mazeConfig *engine.MazeConfig) time.Duration {
	if tick := cmd.Duration("tick"); tick > 0 {
		return tick
	}
	return mazeConfig.TickInterval()
}

// parseSteering parses "tick:direction" pairs separated by commas
func parseSteering(script string) (map[int]engine.Direction, error) {
	steering := make(map[int]engine.Direction)
	if strings.TrimSpace(script) == "" {
		return steering, nil
	}

	for _, pair := range strings.Split(script, ",") {
		tickText, directionText, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("steer %q: expected tick:direction", pair)
		}
		tick, err := strconv.Atoi(tickText)
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("steer %q: tick must be a positive number", pair)
		}
		direction, err := engine.ParseDirection(strings.ToLower(directionText))
		if err != nil {
			return nil, fmt.Errorf("steer %q: %w", pair, err)
		}
		steering[tick] = direction
	}
	return steering, nil
}

// Frame is one line of simulation output
type Frame struct {
	Tick   int               `json:"tick"`
	State  string            `json:"state"`
	Player engine.Position   `json:"player"`
	Facing string            `json:"facing"`
	Score  int               `json:"score"`
	Dots   int               `json:"dots"`
	Pills  int               `json:"pills"`
	Ghosts []engine.Position `json:"ghosts"`
}

// simulate steps the engine up to ticks times, applying steering before the
// step with the matching tick number, and writes a frame per step
func simulate(w io.Writer, e *engine.Engine, ticks int, steering map[int]engine.Direction, asJSON bool) error {
	encoder := json.NewEncoder(w)
	e.Start()

	for i := 1; i <= ticks; i++ {
		if direction, ok := steering[i]; ok {
			e.Steer(direction)
		}

		result := e.Step()
		frame := newFrame(e.Maze(), result)

		if asJSON {
			if err := encoder.Encode(frame); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintln(w, frame.String()); err != nil {
			return err
		}

		if result.State != engine.Running {
			break
		}
	}
	return nil
}

func newFrame(maze *engine.Maze, result engine.TickResult) Frame {
	player := maze.Player()
	frame := Frame{
		Tick:   result.Tick,
		State:  result.State.String(),
		Player: engine.Position{Row: player.Row, Column: player.Column},
		Facing: player.Direction.String(),
		Score:  maze.Score(),
		Dots:   maze.DotsRemaining(),
		Pills:  maze.PillsRemaining(),
	}
	for _, ghost := range maze.Ghosts() {
		frame.Ghosts = append(frame.Ghosts, engine.Position{Row: ghost.Row, Column: ghost.Column})
	}
	return frame
}

// String renders a frame as a single trajectory line
func (f Frame) String() string {
	var ghosts strings.Builder
	for _, g := range f.Ghosts {
		fmt.Fprintf(&ghosts, " (%d,%d)", g.Row, g.Column)
	}
	return fmt.Sprintf("%4d %-7s player=(%d,%d) %-5s score=%d dots=%d pills=%d ghosts=%s",
		f.Tick, f.State, f.Player.Row, f.Player.Column, f.Facing, f.Score, f.Dots, f.Pills,
		strings.TrimSpace(ghosts.String()))
}

// writeMazeList prints the maze listing as an aligned table, marking the
// maze played when --maze is not given
func writeMazeList(w io.Writer, configs []*config.ConfigInfo, defaultName string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tGHOSTS\tDOTS\tPILLS\tDEFAULT\tDESCRIPTION")
	for _, info := range configs {
		isDefault := ""
		if info.Name == defaultName {
			isDefault = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\t%s\n",
			info.ConfigID, info.Name, info.Columns, info.Rows, info.Ghosts, info.Dots, info.PowerPills, isDefault, info.Description)
	}
	return tw.Flush()
}
