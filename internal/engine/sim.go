package engine

import "strconv"

// Moves is the outcome of evaluating a routing configuration: the number
// of moves the token needs to reach the goal, or Infinite if it never does.
type Moves int

// Infinite marks a configuration whose walk never reaches the goal,
// whether by dead end or by cycling forever.
const Infinite Moves = -1

// IsInfinite returns true for the non-terminating sentinel.
func (m Moves) IsInfinite() bool {
	return m < 0
}

// String renders the move count, or "infinity" for a non-terminating walk.
func (m Moves) String() string {
	if m.IsInfinite() {
		return "infinity"
	}
	return strconv.Itoa(int(m))
}

// Step advances the token one move following the active direction at pos,
// mutating the table's toggle state on departure. It returns the new
// position and whether the token moved. The token stays put on an empty
// queue, and also if the active arrow points off the grid; the edit
// protocol should rule the latter out, but a stale queue must not crash
// the walk.
func Step(t *RouteTable, pos Position) (Position, bool) {
	q := t.queues[t.index(pos)]
	if len(q) == 0 {
		return pos, false
	}

	next := pos.Step(q[0])
	if !t.grid.Contains(next) {
		return pos, false
	}

	// Departing a two-arrow cell flips which arrow is active.
	if len(q) == 2 {
		q[0], q[1] = q[1], q[0]
	}

	return next, true
}

// Evaluate computes how many moves the token takes from the start cell to
// a goal cell under the given routing, or Infinite if it never arrives.
//
// The walk is deterministic over the state (position, full table), so a
// non-terminating configuration must revisit a state. Floyd's
// tortoise-and-hare detects that without a precomputed step bound: two
// walks over private deep copies of the table, the hare advancing two
// moves per round and the tortoise one, meeting only inside a cycle.
// The live table is never touched.
func Evaluate(t *RouteTable) Moves {
	g := t.grid

	hare := t.Clone()
	tortoise := t.Clone()
	harePos := g.Start()
	tortoisePos := g.Start()

	moves := 0
	for {
		if g.landmarkAt(harePos).Has(Goal) {
			return Moves(moves)
		}
		next, moved := Step(hare, harePos)
		if !moved {
			return Infinite
		}
		harePos = next
		moves++

		if g.landmarkAt(harePos).Has(Goal) {
			return Moves(moves)
		}
		next, moved = Step(hare, harePos)
		if !moved {
			return Infinite
		}
		harePos = next
		moves++

		tortoisePos, _ = Step(tortoise, tortoisePos)

		if tortoisePos == harePos && tortoise.Equal(hare) {
			return Infinite
		}
	}
}

// Run walks the token over the live route table one move at a time, so an
// animation can interleave each move with drawing and input. Departures
// toggle the live queues; Restore puts the queues captured at creation
// back, which both cancellation and normal completion use. Run never
// blocks or sleeps: pacing belongs to the caller.
type Run struct {
	table    *RouteTable
	snapshot *RouteTable
	pos      Position
	moves    int
	done     bool
	deadEnd  bool
}

// NewRun snapshots the table and places the token on the start cell.
func NewRun(t *RouteTable) *Run {
	return &Run{
		table:    t,
		snapshot: t.Clone(),
		pos:      t.grid.Start(),
	}
}

// Advance performs one move. It returns the token's position and whether
// the walk is still going; false means the goal was reached or the token
// dead-ended, after which further calls are no-ops.
func (r *Run) Advance() (Position, bool) {
	if r.done {
		return r.pos, false
	}
	if r.table.grid.landmarkAt(r.pos).Has(Goal) {
		r.done = true
		return r.pos, false
	}

	next, moved := Step(r.table, r.pos)
	if !moved {
		r.done = true
		r.deadEnd = true
		return r.pos, false
	}

	r.pos = next
	r.moves++
	return r.pos, true
}

// Position returns the token's current cell.
func (r *Run) Position() Position {
	return r.pos
}

// Moves returns the number of moves taken so far.
func (r *Run) Moves() int {
	return r.moves
}

// AtGoal returns true once the walk has stopped on a goal cell.
func (r *Run) AtGoal() bool {
	return r.done && !r.deadEnd && r.table.grid.landmarkAt(r.pos).Has(Goal)
}

// DeadEnd returns true if the walk stopped without reaching a goal.
func (r *Run) DeadEnd() bool {
	return r.deadEnd
}

// Finished returns true once the walk has stopped for any reason.
func (r *Run) Finished() bool {
	return r.done
}

// Restore puts the route table back to its state at NewRun, undoing the
// toggles the walk performed.
func (r *Run) Restore() {
	r.table.restoreFrom(r.snapshot)
}
