package engine

import "testing"

// queueTotal sums all queue lengths across the board.
func queueTotal(t *RouteTable) int {
	total := 0
	for r := 0; r < t.grid.Rows(); r++ {
		for c := 0; c < t.grid.Cols(); c++ {
			total += len(t.QueueAt(P(r, c)))
		}
	}
	return total
}

// checkBudget verifies remaining + placed == total.
func checkBudget(t *testing.T, rt *RouteTable) {
	t.Helper()
	if rt.Remaining()+queueTotal(rt) != rt.Total() {
		t.Fatalf("budget broken: remaining %d + placed %d != total %d",
			rt.Remaining(), queueTotal(rt), rt.Total())
	}
}

func TestCanPlace(t *testing.T) {
	g := mustGrid(t,
		"S#.",
		"..G",
	)
	rt := NewRouteTable(g, 10)

	testCases := []struct {
		name string
		pos  Position
		dir  Dir
		want bool
	}{
		{"empty_to_empty", P(1, 0), Right, true},
		{"start_originates", P(0, 0), Down, true},
		{"into_obstacle", P(0, 0), Right, false},
		{"off_grid", P(0, 0), Up, false},
		{"from_obstacle", P(0, 1), Down, false},
		{"from_goal", P(1, 2), Left, false},
		{"into_goal", P(1, 1), Right, true},
		{"outside_grid", P(5, 5), Up, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rt.CanPlace(tc.pos, tc.dir); got != tc.want {
				t.Errorf("CanPlace(%v, %v) = %v, want %v", tc.pos, tc.dir, got, tc.want)
			}
		})
	}
}

func TestTogglePlaceAndRemove(t *testing.T) {
	g := mustGrid(t, "S..", "...")
	rt := NewRouteTable(g, 5)

	rt.Toggle(P(0, 0), Right)
	if q := rt.QueueAt(P(0, 0)); len(q) != 1 || q[0] != Right {
		t.Fatalf("queue after place = %v", q)
	}
	if rt.Remaining() != 4 {
		t.Errorf("remaining = %d, want 4", rt.Remaining())
	}
	checkBudget(t, rt)

	// Toggling the same direction removes the arrow and refunds it.
	rt.Toggle(P(0, 0), Right)
	if q := rt.QueueAt(P(0, 0)); q != nil {
		t.Fatalf("queue after remove = %v, want empty", q)
	}
	if rt.Remaining() != 5 {
		t.Errorf("remaining = %d, want 5", rt.Remaining())
	}
	checkBudget(t, rt)
}

func TestToggleSecondArrowBecomesActive(t *testing.T) {
	g := mustGrid(t, "...", ".S.", "...")
	rt := NewRouteTable(g, 5)
	p := P(1, 1)

	rt.Toggle(p, Right)
	rt.Toggle(p, Down)

	// The newest arrow sits at the front (active).
	q := rt.QueueAt(p)
	if len(q) != 2 || q[0] != Down || q[1] != Right {
		t.Fatalf("queue = %v, want [Down Right]", q)
	}
	if rt.Remaining() != 3 {
		t.Errorf("remaining = %d, want 3", rt.Remaining())
	}
	checkBudget(t, rt)
}

func TestToggleTwoArrowCell(t *testing.T) {
	setup := func(t *testing.T) (*RouteTable, Position) {
		g := mustGrid(t, "...", ".S.", "...")
		rt := NewRouteTable(g, 5)
		p := P(1, 1)
		rt.Toggle(p, Right)
		rt.Toggle(p, Down) // queue: [Down Right]
		return rt, p
	}

	t.Run("remove_active", func(t *testing.T) {
		rt, p := setup(t)
		rt.Toggle(p, Down)
		q := rt.QueueAt(p)
		if len(q) != 1 || q[0] != Right {
			t.Fatalf("queue = %v, want [Right]", q)
		}
		if rt.Remaining() != 4 {
			t.Errorf("remaining = %d, want 4", rt.Remaining())
		}
		checkBudget(t, rt)
	})

	t.Run("promote_inactive", func(t *testing.T) {
		rt, p := setup(t)
		rt.Toggle(p, Right) // matches inactive entry: swap, no budget change
		q := rt.QueueAt(p)
		if len(q) != 2 || q[0] != Right || q[1] != Down {
			t.Fatalf("queue = %v, want [Right Down]", q)
		}
		if rt.Remaining() != 3 {
			t.Errorf("remaining = %d, want 3", rt.Remaining())
		}
		checkBudget(t, rt)
	})

	t.Run("replace_inactive", func(t *testing.T) {
		rt, p := setup(t)
		rt.Toggle(p, Up) // retracts the inactive Right, places Up
		q := rt.QueueAt(p)
		if len(q) != 2 || q[0] != Up || q[1] != Down {
			t.Fatalf("queue = %v, want [Up Down]", q)
		}
		if rt.Remaining() != 3 {
			t.Errorf("remaining = %d, want 3", rt.Remaining())
		}
		checkBudget(t, rt)
	})
}

func TestEdgeExclusivity(t *testing.T) {
	g := mustGrid(t, "S..")
	rt := NewRouteTable(g, 5)

	// A→B then B→A across the same edge: the first arrow must be
	// retracted and refunded when the second is placed.
	rt.Toggle(P(0, 0), Right)
	rt.Toggle(P(0, 1), Left)

	if q := rt.QueueAt(P(0, 0)); q != nil {
		t.Errorf("cell (0,0) should have lost its arrow, has %v", q)
	}
	q := rt.QueueAt(P(0, 1))
	if len(q) != 1 || q[0] != Left {
		t.Errorf("cell (0,1) queue = %v, want [Left]", q)
	}
	if rt.Remaining() != 4 {
		t.Errorf("remaining = %d, want 4 (one arrow on the board)", rt.Remaining())
	}
	checkBudget(t, rt)
}

func TestBudgetExhaustedIsNoOp(t *testing.T) {
	g := mustGrid(t, "S..")
	rt := NewRouteTable(g, 1)

	rt.Toggle(P(0, 0), Right)
	if rt.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", rt.Remaining())
	}

	// No budget left: placing elsewhere must change nothing.
	rt.Toggle(P(0, 1), Right)
	if q := rt.QueueAt(P(0, 1)); q != nil {
		t.Errorf("placement with empty budget should no-op, got %v", q)
	}
	checkBudget(t, rt)
}

func TestZeroBudgetNeverPlaces(t *testing.T) {
	g := mustGrid(t, "SG")
	rt := NewRouteTable(g, 0)

	rt.Toggle(P(0, 0), Right)
	if q := rt.QueueAt(P(0, 0)); q != nil {
		t.Errorf("zero budget placed an arrow: %v", q)
	}
	checkBudget(t, rt)
}

func TestCrossEdgeReplacementRefunds(t *testing.T) {
	g := mustGrid(t, "S..")
	rt := NewRouteTable(g, 1)

	// With budget 1, re-routing the single arrow across the shared edge
	// must reuse the refunded arrow.
	rt.Toggle(P(0, 0), Right)
	rt.Toggle(P(0, 1), Left)

	q := rt.QueueAt(P(0, 1))
	if len(q) != 1 || q[0] != Left {
		t.Fatalf("queue at (0,1) = %v, want [Left]", q)
	}
	if rt.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", rt.Remaining())
	}
	checkBudget(t, rt)
}

func TestToggleIllegalTargetsAreNoOps(t *testing.T) {
	g := mustGrid(t,
		"S#",
		".G",
	)
	rt := NewRouteTable(g, 5)

	before := rt.Clone()

	rt.Toggle(P(0, 0), Right) // into obstacle
	rt.Toggle(P(0, 0), Up)    // off grid
	rt.Toggle(P(1, 1), Left)  // goal cell originating
	rt.Toggle(P(0, 1), Down)  // obstacle cell originating
	rt.Toggle(P(9, 9), Up)    // outside grid

	if !rt.Equal(before) || rt.Remaining() != before.Remaining() {
		t.Error("illegal toggles must leave the table byte-for-byte unchanged")
	}
}

func TestBudgetInvariantUnderEditStorm(t *testing.T) {
	g := mustGrid(t,
		"S...",
		".#..",
		"...G",
	)
	rt := NewRouteTable(g, 6)

	// Walk every cell and hammer every direction twice; the budget
	// equation must hold after each keystroke.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			for _, d := range Dirs() {
				rt.Toggle(P(r, c), d)
				checkBudget(t, rt)
				rt.Toggle(P(r, c), d)
				checkBudget(t, rt)
			}
		}
	}

	// Edge exclusivity must survive the storm as well.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := P(r, c)
			for _, d := range rt.QueueAt(p) {
				n := p.Step(d)
				for _, nd := range rt.QueueAt(n) {
					if nd == d.Opposite() {
						t.Fatalf("edge %v-%v carries two arrows", p, n)
					}
				}
			}
		}
	}
}

func TestReset(t *testing.T) {
	g := mustGrid(t, "S..", "...")
	rt := NewRouteTable(g, 4)

	rt.Toggle(P(0, 0), Right)
	rt.Toggle(P(0, 1), Down)

	rt.Reset()

	if queueTotal(rt) != 0 {
		t.Error("reset should wipe every queue")
	}
	if rt.Remaining() != 4 {
		t.Errorf("remaining after reset = %d, want 4", rt.Remaining())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, "S..")
	rt := NewRouteTable(g, 4)
	rt.Toggle(P(0, 0), Right)

	clone := rt.Clone()
	clone.Toggle(P(0, 1), Right)

	if len(rt.QueueAt(P(0, 1))) != 0 {
		t.Error("mutating the clone leaked into the original")
	}
	if rt.Remaining() != 3 {
		t.Errorf("original remaining = %d, want 3", rt.Remaining())
	}
	if clone.Remaining() != 2 {
		t.Errorf("clone remaining = %d, want 2", clone.Remaining())
	}
}
