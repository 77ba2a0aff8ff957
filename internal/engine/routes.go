package engine

// RouteTable holds one ordered direction queue per cell plus the global
// arrow budget. Each queue contains at most two distinct directions; the
// entry at index 0 is the active one, followed on the token's next
// departure from that cell.
//
// The table maintains two invariants across every edit:
//   - remaining + the sum of all queue lengths == total
//   - an edge between two adjacent cells carries at most one arrow,
//     counting both endpoints
type RouteTable struct {
	grid      *Grid
	queues    [][]Dir // row-major, one queue per cell
	total     int
	remaining int
}

// NewRouteTable creates an empty route table for the grid with the given
// total arrow budget.
func NewRouteTable(g *Grid, total int) *RouteTable {
	if total < 0 {
		total = 0
	}
	return &RouteTable{
		grid:      g,
		queues:    make([][]Dir, g.rows*g.cols),
		total:     total,
		remaining: total,
	}
}

// Grid returns the board this table routes over.
func (t *RouteTable) Grid() *Grid {
	return t.grid
}

// Total returns the arrow budget fixed at creation.
func (t *RouteTable) Total() int {
	return t.total
}

// Remaining returns the number of arrows left to place.
func (t *RouteTable) Remaining() int {
	return t.remaining
}

// Used returns the number of arrows currently on the board.
func (t *RouteTable) Used() int {
	return t.total - t.remaining
}

func (t *RouteTable) index(p Position) int {
	return p.Row*t.grid.cols + p.Col
}

// QueueAt returns a copy of the direction queue at p, active entry first.
// Returns nil for out-of-bounds positions.
func (t *RouteTable) QueueAt(p Position) []Dir {
	if !t.grid.Contains(p) {
		return nil
	}
	q := t.queues[t.index(p)]
	if len(q) == 0 {
		return nil
	}
	out := make([]Dir, len(q))
	copy(out, q)
	return out
}

// ActiveAt returns the active direction at p, if any.
func (t *RouteTable) ActiveAt(p Position) (Dir, bool) {
	if !t.grid.Contains(p) {
		return Up, false
	}
	q := t.queues[t.index(p)]
	if len(q) == 0 {
		return Up, false
	}
	return q[0], true
}

// CanPlace reports whether an arrow may legally originate at p pointing in
// direction d. A cell carrying a goal or obstacle never originates an
// arrow, and no arrow may point off the grid or into an obstacle.
func (t *RouteTable) CanPlace(p Position, d Dir) bool {
	if !t.grid.Contains(p) {
		return false
	}
	if m := t.grid.landmarkAt(p); m.Has(Goal) || m.Has(Obstacle) {
		return false
	}
	n := p.Step(d)
	if !t.grid.Contains(n) {
		return false
	}
	if t.grid.landmarkAt(n).Has(Obstacle) {
		return false
	}
	return true
}

// place inserts an arrow at p pointing in direction d, assuming CanPlace
// already held. If the neighbor owns an arrow back across the same edge,
// that arrow is retracted first and its cost refunded. With the budget
// exhausted the insert silently does nothing.
func (t *RouteTable) place(p Position, d Dir) {
	n := p.Step(d)
	if !t.grid.Contains(n) {
		return
	}

	// The edge between p and n carries at most one arrow in total.
	if t.remove(n, d.Opposite()) {
		t.remaining++
	}

	if t.remaining > 0 {
		i := t.index(p)
		t.queues[i] = append([]Dir{d}, t.queues[i]...)
		t.remaining--
	}
}

// remove deletes the first occurrence of d from p's queue.
// Returns true if an entry was removed. Does not touch the budget.
func (t *RouteTable) remove(p Position, d Dir) bool {
	i := t.index(p)
	for j, e := range t.queues[i] {
		if e == d {
			t.queues[i] = append(t.queues[i][:j], t.queues[i][j+1:]...)
			return true
		}
	}
	return false
}

// Toggle applies one edit keystroke at p in direction d: it places,
// removes, promotes, or replaces an arrow depending on the current queue.
// Illegal or out-of-budget edits are silent no-ops.
func (t *RouteTable) Toggle(p Position, d Dir) {
	if !t.grid.Contains(p) {
		return
	}

	placeable := t.CanPlace(p, d)
	i := t.index(p)
	q := t.queues[i]

	switch len(q) {
	case 0:
		if placeable {
			t.place(p, d)
		}
	case 1:
		if q[0] == d {
			t.remove(p, d)
			t.remaining++
		} else if placeable {
			t.place(p, d)
		}
	default:
		switch {
		case q[0] == d:
			// Removing the active arrow leaves the inactive one alone
			// and active.
			t.remove(p, d)
			t.remaining++
		case q[1] == d:
			// Pure reordering: the requested direction becomes active
			// at no arrow cost.
			q[0], q[1] = q[1], q[0]
		case placeable:
			// Replace the inactive arrow with the new direction.
			t.remove(p, q[1])
			t.remaining++
			t.place(p, d)
		}
	}
}

// Reset wipes every queue and restores the full arrow budget.
// The grid is untouched.
func (t *RouteTable) Reset() {
	t.queues = make([][]Dir, t.grid.rows*t.grid.cols)
	t.remaining = t.total
}

// Clone returns a deep copy of the table. The immutable grid is shared.
func (t *RouteTable) Clone() *RouteTable {
	queues := make([][]Dir, len(t.queues))
	for i, q := range t.queues {
		if len(q) > 0 {
			queues[i] = make([]Dir, len(q))
			copy(queues[i], q)
		}
	}
	return &RouteTable{
		grid:      t.grid,
		queues:    queues,
		total:     t.total,
		remaining: t.remaining,
	}
}

// Equal reports whether two tables have identical queues, comparing both
// membership and order. Order matters: a toggled queue is a different
// routing state.
func (t *RouteTable) Equal(other *RouteTable) bool {
	if len(t.queues) != len(other.queues) {
		return false
	}
	for i, q := range t.queues {
		oq := other.queues[i]
		if len(q) != len(oq) {
			return false
		}
		for j, d := range q {
			if oq[j] != d {
				return false
			}
		}
	}
	return true
}

// restoreFrom copies another table's queues and budget into this one.
// Both tables must belong to the same grid.
func (t *RouteTable) restoreFrom(snapshot *RouteTable) {
	queues := make([][]Dir, len(snapshot.queues))
	for i, q := range snapshot.queues {
		if len(q) > 0 {
			queues[i] = make([]Dir, len(q))
			copy(queues[i], q)
		}
	}
	t.queues = queues
	t.remaining = snapshot.remaining
}
