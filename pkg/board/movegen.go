package board

// Successor pairs a legal move with the resulting position, so that callers
// (the MCTS tree and the choose_move facade) can report the move that was
// actually played without re-deriving it from a position diff.
type Successor struct {
	Move     Move
	Position *Position
}

// Moves enumerates legal successor positions for the player to move.
//
// movesOnly skips wall placements entirely (used by CanWin and by the
// playout policy's cheap pawn-only queries). validatePaths discards any
// wall placement that would strand either player without a path to its
// goal row. returnWins short-circuits: if any pawn successor already wins,
// only that successor is returned (the proof-of-win shortcut used by
// CanWin).
//
// Pawn moves are generated first, in N,S,E,W order; walls follow, iterated
// by increasing slot index. This ordering is deterministic but is not
// required for correctness -- only for stable, reproducible move lists.
func (p *Position) Moves(movesOnly, validatePaths, returnWins bool) []Successor {
	mover := p.turn
	opponent := mover.Opponent()

	var successors []Successor

	emitPawn := func(target Square) Successor {
		s := Successor{Move: Move{Kind: PawnMove, Pawn: target}, Position: p.applyPawnMove(target)}
		successors = append(successors, s)
		return s
	}

	for _, d := range Directions {
		pawn := p.pawns[mover]
		if !p.IsOpen(pawn, d) {
			continue
		}
		target := step(pawn, d)

		if target == p.pawns[opponent] {
			// A jump is required: straight over if the far square is open,
			// else one or both lateral side-steps.
			if p.IsOpen(target, d) {
				s := emitPawn(step(target, d))
				if returnWins {
					if w, ok := s.Position.Winner(); ok && w == mover {
						return []Successor{s}
					}
				}
				continue
			}

			for _, lat := range [2]Direction{d.Left(), d.Right()} {
				if !p.IsOpen(target, lat) {
					continue
				}
				s := emitPawn(step(target, lat))
				if returnWins {
					if w, ok := s.Position.Winner(); ok && w == mover {
						return []Successor{s}
					}
				}
			}
			continue
		}

		s := emitPawn(target)
		if returnWins {
			if w, ok := s.Position.Winner(); ok && w == mover {
				return []Successor{s}
			}
		}
	}

	if movesOnly || p.wallsRemaining[mover] == 0 {
		return successors
	}

	for slot := 0; slot < NumSlots; slot++ {
		if p.hwalls.IsSet(slot) || p.vwalls.IsSet(slot) {
			continue
		}

		if !p.hwalls.HasHorizontalNeighbor(slot) {
			succ := p.applyWallMove(slot, Horizontal)
			if !validatePaths || succ.PathsExist() {
				successors = append(successors, Successor{
					Move:     Move{Kind: WallMove, Slot: slot, Orientation: Horizontal},
					Position: succ,
				})
			}
		}
		if !p.vwalls.HasVerticalNeighbor(slot) {
			succ := p.applyWallMove(slot, Vertical)
			if !validatePaths || succ.PathsExist() {
				successors = append(successors, Successor{
					Move:     Move{Kind: WallMove, Slot: slot, Orientation: Vertical},
					Position: succ,
				})
			}
		}
	}
	return successors
}

// CanWin returns true iff some legal pawn move (including jumps) produces a
// winning position for the player to move. It first bounds the search with
// a cheap "pawn close enough to the goal row" test (within two rows, the
// reach of a straight jump) and only then enumerates pawn-only successors.
func (p *Position) CanWin() bool {
	mover := p.turn
	switch mover {
	case White:
		if p.pawns[White].Row() > 2 {
			return false
		}
	case Black:
		if p.pawns[Black].Row() < 6 {
			return false
		}
	}

	for _, s := range p.Moves(true, false, true) {
		if w, ok := s.Position.Winner(); ok && w == mover {
			return true
		}
	}
	return false
}

// applyPawnMove returns the successor of moving the mover's pawn to target.
// The mover's path cache advances (pops its head) if target matches the
// cached next step, else is invalidated; the opponent's cache is preserved.
func (p *Position) applyPawnMove(target Square) *Position {
	cp := *p
	mover := p.turn
	cp.pawns[mover] = target
	cp.turn = mover.Opponent()

	if path, ok := p.cachedPath(mover); ok && len(path) > 0 && path[0] == target {
		cp.pathCache[mover] = path[1:]
		cp.pathKnown[mover] = true
	} else {
		cp.pathCache[mover] = nil
		cp.pathKnown[mover] = false
	}
	return &cp
}

// applyWallMove returns the successor of placing a wall of the given
// orientation at slot. Both shortest-path caches are cleared.
func (p *Position) applyWallMove(slot int, o Orientation) *Position {
	cp := *p
	mover := p.turn
	switch o {
	case Horizontal:
		cp.hwalls = p.hwalls.Set(slot)
	case Vertical:
		cp.vwalls = p.vwalls.Set(slot)
	}
	cp.wallsRemaining[mover] = p.wallsRemaining[mover] - 1
	cp.turn = mover.Opponent()
	cp.pathCache = [2][]Square{}
	cp.pathKnown = [2]bool{}
	return &cp
}
