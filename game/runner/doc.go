// Package runner hosts the simulation loop.
//
// A Runner owns an engine.Engine and is the only goroutine that touches it.
// Ticks arrive from a time.Ticker (or an injected channel in tests), steering
// requests arrive through Steer, and every step is reported to the OnTick
// observers before the next one starts.
//
// Usage:
//
//	r := runner.New(gameEngine, runner.WithInterval(200*time.Millisecond))
//	r.OnTick(func(result engine.TickResult) {
//		renderer.Draw(gameEngine.Maze(), result)
//	})
//
//	go func() {
//		r.Steer(engine.North)
//	}()
//
//	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal(err)
//	}
package runner
