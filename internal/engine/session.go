package engine

// Session ties a grid to its editable route table and at most one active
// run. It is the single owner of the mutable routing state; the
// presentation shell drives edits and animation exclusively through it and
// polls the query methods after each call.
type Session struct {
	grid   *Grid
	routes *RouteTable
	run    *Run
}

// NewSession creates a session over the grid with the given arrow budget.
func NewSession(g *Grid, totalArrows int) *Session {
	return &Session{
		grid:   g,
		routes: NewRouteTable(g, totalArrows),
	}
}

// Grid returns the board.
func (s *Session) Grid() *Grid {
	return s.grid
}

// ToggleEdit applies one edit keystroke at p in direction d.
// Edits are ignored while a run is animating, since the run owns the
// live queues until it ends.
func (s *Session) ToggleEdit(p Position, d Dir) {
	if s.run != nil {
		return
	}
	s.routes.Toggle(p, d)
}

// Reset ends any active run, wipes all arrows, and restores the budget.
func (s *Session) Reset() {
	s.run = nil
	s.routes.Reset()
}

// Evaluate classifies the current routing: the move count to the goal,
// or Infinite. It works on copies and never perturbs the editable state.
func (s *Session) Evaluate() Moves {
	return Evaluate(s.routes)
}

// MoveCount is an alias for Evaluate, for shells polling after each edit.
func (s *Session) MoveCount() Moves {
	return s.Evaluate()
}

// RemainingArrows returns the number of arrows left to place.
func (s *Session) RemainingArrows() int {
	return s.routes.Remaining()
}

// UsedArrows returns the number of arrows on the board.
func (s *Session) UsedArrows() int {
	return s.routes.Used()
}

// TotalArrows returns the budget fixed at session creation.
func (s *Session) TotalArrows() int {
	return s.routes.Total()
}

// QueueAt returns a copy of the direction queue at p for rendering.
func (s *Session) QueueAt(p Position) []Dir {
	return s.routes.QueueAt(p)
}

// CanPlace reports whether an arrow may originate at p in direction d.
func (s *Session) CanPlace(p Position, d Dir) bool {
	return s.routes.CanPlace(p, d)
}

// BeginRun starts animating the token over the live queues, snapshotting
// them first. A run already in progress is ended (and restored) first.
func (s *Session) BeginRun() {
	if s.run != nil {
		s.EndRun()
	}
	s.run = NewRun(s.routes)
}

// AdvanceRun performs one animation move. It returns the token position
// and whether the walk is still going; with no active run it reports the
// start cell and false.
func (s *Session) AdvanceRun() (Position, bool) {
	if s.run == nil {
		return s.grid.Start(), false
	}
	return s.run.Advance()
}

// RunActive returns true while a run is in progress.
func (s *Session) RunActive() bool {
	return s.run != nil
}

// RunPosition returns the token's current cell during a run.
func (s *Session) RunPosition() Position {
	if s.run == nil {
		return s.grid.Start()
	}
	return s.run.Position()
}

// RunMoves returns the moves the active run has taken so far.
func (s *Session) RunMoves() int {
	if s.run == nil {
		return 0
	}
	return s.run.Moves()
}

// RunAtGoal returns true if the active run has stopped on a goal cell.
func (s *Session) RunAtGoal() bool {
	return s.run != nil && s.run.AtGoal()
}

// EndRun stops the run, whether finished or cancelled, restoring the
// queues captured at BeginRun so the board shows the player's edit state
// again.
func (s *Session) EndRun() {
	if s.run == nil {
		return
	}
	s.run.Restore()
	s.run = nil
}
