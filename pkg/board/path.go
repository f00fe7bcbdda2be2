package board

// This file implements the Path Engine: BFS connectivity, shortest path and
// step-count map queries over a Position's open-direction graph. It lives in
// the board package (rather than a separate package) because the move
// generator must consult it for every wall placement's path-preservation
// check, and the board package is where the move generator itself lives --
// keeping a position and everything that walks it (move generation
// included) in one package avoids an import cycle between the two.

// PathsExist runs a BFS from each pawn and returns true iff both players
// retain at least one path of open moves to their own goal row.
func (p *Position) PathsExist() bool {
	return p.hasPath(White) && p.hasPath(Black)
}

func (p *Position) hasPath(player Player) bool {
	start := p.pawns[player]
	if isGoal(player, start) {
		return true
	}

	var visited [81]bool
	visited[start] = true
	queue := []Square{start}

	for len(queue) > 0 {
		sq := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			if !p.IsOpen(sq, d) {
				continue
			}
			next := step(sq, d)
			if visited[next] {
				continue
			}
			if isGoal(player, next) {
				return true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// ShortestPath returns the sequence of squares from the first step after the
// pawn up to and including the first goal-row square reached by a
// fixed-order (N,S,E,W) BFS, or nil if no path exists. The result is
// memoized on the position.
func (p *Position) ShortestPath(player Player) []Square {
	if path, ok := p.cachedPath(player); ok {
		return path
	}
	path := p.computeShortestPath(player)
	p.fillCache(player, path)
	return path
}

func (p *Position) computeShortestPath(player Player) []Square {
	start := p.pawns[player]
	if isGoal(player, start) {
		return nil
	}

	var visited [81]bool
	var parent [81]Square
	visited[start] = true
	queue := []Square{start}

	for len(queue) > 0 {
		sq := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			if !p.IsOpen(sq, d) {
				continue
			}
			next := step(sq, d)
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = sq

			if isGoal(player, next) {
				return reconstruct(parent, start, next)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func reconstruct(parent [81]Square, start, goal Square) []Square {
	var rev []Square
	for sq := goal; sq != start; sq = parent[sq] {
		rev = append(rev, sq)
	}
	path := make([]Square, len(rev))
	for i, sq := range rev {
		path[len(rev)-1-i] = sq
	}
	return path
}

// WalkPaths labels every square with its minimum step count (1-indexed) from
// the player's pawn, without crossing the opponent's square; 0 if unreached.
// Expansion halts at goal squares: they receive a label but are not expanded
// further.
func (p *Position) WalkPaths(player Player) [81]uint32 {
	var labels [81]uint32

	start := p.pawns[player]
	opp := p.pawns[player.Opponent()]

	var visited [81]bool
	visited[opp] = true
	visited[start] = true
	labels[start] = 1
	queue := []Square{start}

	for len(queue) > 0 {
		sq := queue[0]
		queue = queue[1:]

		if isGoal(player, sq) {
			continue // halt expansion at goal squares
		}

		for _, d := range Directions {
			if !p.IsOpen(sq, d) {
				continue
			}
			next := step(sq, d)
			if visited[next] {
				continue
			}
			visited[next] = true
			labels[next] = labels[sq] + 1
			queue = append(queue, next)
		}
	}
	return labels
}

func isGoal(player Player, sq Square) bool {
	if player == White {
		return sq.IsWhiteGoal()
	}
	return sq.IsBlackGoal()
}

// step returns the square reached from sq by a single step in dir. Callers
// must have already confirmed the step stays on the board (e.g. via IsOpen).
func step(sq Square, dir Direction) Square {
	return Square(int(sq) + dir.Delta())
}
