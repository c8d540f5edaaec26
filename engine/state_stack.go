package engine

import "chess-game/game"

// withMove plays m, runs search on the resulting position and takes the move
// back before returning, including when search panics.
func withMove(gs *game.GameState, m game.Move, search func() int) int {
	undo := gs.Apply(m)
	defer undo()
	return search()
}
