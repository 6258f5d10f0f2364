package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/wricardo/mazegame/game/engine"
	"github.com/wricardo/mazegame/game/runner"
)

// App plays a game on a terminal screen
type App struct {
	screen   tcell.Screen
	runner   *runner.Runner
	renderer *Renderer
	logger   log.FieldLogger

	quit     chan struct{}
	quitOnce sync.Once
}

// NewApp wires a screen to a runner. The caller owns the screen and must
// Init it before Run and Fini it afterwards.
func NewApp(screen tcell.Screen, r *runner.Runner, logger log.FieldLogger) *App {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &App{
		screen:   screen,
		runner:   r,
		renderer: NewRenderer(screen, r.Engine().Maze()),
		logger:   logger,
		quit:     make(chan struct{}),
	}
}

// Renderer returns the app's renderer
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Run draws the maze and plays until the player quits or the context ends.
// After game over the final board stays up until a quit key.
func (a *App) Run(ctx context.Context) error {
	maze := a.runner.Engine().Maze()

	a.renderer.DrawMaze()
	a.renderer.DrawStats(maze.LivesRemaining(), maze.Score())
	a.renderer.DrawEntities()
	a.screen.Show()

	maze.Subscribe(a.renderer)
	a.runner.OnTick(a.renderer.Draw)

	go a.pollEvents()

	if err := a.runner.Run(ctx); err != nil {
		return err
	}

	if a.runner.Engine().State() == engine.GameOver {
		a.logger.WithField("score", maze.Score()).Info("waiting for quit after game over")
		select {
		case <-a.quit:
		case <-ctx.Done():
		}
	}
	return nil
}

// pollEvents forwards steering keys to the runner until a quit key or Fini
func (a *App) pollEvents() {
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if IsQuit(ev) {
				a.logger.Debug("quit requested")
				a.quitOnce.Do(func() { close(a.quit) })
				a.runner.Stop()
				return
			}
			if direction, ok := KeyDirection(ev); ok {
				a.runner.Steer(direction)
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}
