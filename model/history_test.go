package model

import "testing"

func runHistory(t *testing.T, g *Grid, generations int) int {
	t.Helper()
	h := NewHistory(5)
	period := 0
	for range generations {
		h.Record(g)
		g = Step(g)
		period = h.Period(g)
	}
	return period
}

func TestHistoryPeriod(t *testing.T) {
	block := mustParse(t,
		"....",
		".11.",
		".11.",
		"....",
	)
	if p := runHistory(t, block, 3); p != 1 {
		t.Errorf("block period = %d, want 1", p)
	}

	blinker := mustParse(t,
		".....",
		".....",
		".111.",
		".....",
		".....",
	)
	if p := runHistory(t, blinker, 1); p != 0 {
		t.Errorf("blinker period after one step = %d, want 0", p)
	}
	if p := runHistory(t, blinker, 4); p != 2 {
		t.Errorf("blinker period = %d, want 2", p)
	}

	glider := mustParse(t,
		"........",
		"..1.....",
		"...1....",
		".111....",
		"........",
		"........",
		"........",
		"........",
	)
	if p := runHistory(t, glider, 4); p != 0 {
		t.Errorf("moving glider reported period %d", p)
	}
}

func TestHistoryBounded(t *testing.T) {
	blinker := mustParse(t, "...", "111", "...")
	h := NewHistory(1)
	h.Record(blinker)
	next := Step(blinker)
	h.Record(next)
	if p := h.Period(Step(next)); p != 0 {
		t.Errorf("history of size 1 found period %d", p)
	}

	if p := NewHistory(5).Period(blinker); p != 0 {
		t.Errorf("empty history found period %d", p)
	}

	disabled := NewHistory(0)
	disabled.Record(blinker)
	if p := disabled.Period(blinker); p != 0 {
		t.Errorf("disabled history found period %d", p)
	}
}
