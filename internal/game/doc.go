// Package game implements the five-card-draw round loop.
//
// The main type is Engine, which seats players at a Dealer (normally a
// Table), then repeatedly deals, lets each player draw, compares the hands and
// credits the winner.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	table := game.NewTable(rng, logger)
//	players := game.NewPlayers([]game.Standing{{Name: "Alice"}, {Name: "Bob"}})
//	table.Seat(players...)
//	engine, err := game.NewEngine(table, players, game.WithLogger(logger))
//	result, err := engine.PlayRound(ctx)
//
// # Events
//
// Every lifecycle boundary is published on the engine's EventBus. Delivery is
// synchronous: the engine waits for each subscriber before moving on, which is
// how discard selection works. A subscriber handling SelectDiscardsEvent marks
// cards on the player and returns; the marked cards are replaced as soon as
// Publish returns.
//
//	engine.EventBus().Subscribe(game.SubscriberFunc(func(ev game.GameEvent) {
//	    if sel, ok := ev.(game.SelectDiscardsEvent); ok {
//	        _ = sel.Player.MarkDiscard(0)
//	    }
//	}))
//
// # Showdown
//
// ResolveWinners applies the tie-break cascade: best category first, then the
// category specific ranks (pair, two pairs, trips, quads) and finally the five
// card ranks in order. Contenders still tied at the end share a draw and
// nobody is credited with a win.
package game
