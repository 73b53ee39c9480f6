package rules

import "testing"

func TestTransitionRule(t *testing.T) {
	tests := []struct {
		name      string
		current   CellState
		neighbors int
		want      CellState
	}{
		{"dead stays dead with 0", Dead, 0, Dead},
		{"dead stays dead with 2", Dead, 2, Dead},
		{"birth with 3", Dead, 3, Alive},
		{"dead stays dead with 4", Dead, 4, Dead},
		{"dead stays dead with 8", Dead, 8, Dead},
		{"underpopulation with 0", Alive, 0, Dead},
		{"underpopulation with 1", Alive, 1, Dead},
		{"survival with 2", Alive, 2, Alive},
		{"survival with 3", Alive, 3, Alive},
		{"overpopulation with 4", Alive, 4, Dead},
		{"overpopulation with 8", Alive, 8, Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransitionRule(tt.current, tt.neighbors); got != tt.want {
				t.Errorf("TransitionRule(%v, %d) = %v, want %v", tt.current, tt.neighbors, got, tt.want)
			}
		})
	}
}

func TestCellStateValues(t *testing.T) {
	if Dead != 0 || Alive != 1 {
		t.Fatalf("Dead=%d Alive=%d, want 0 and 1", Dead, Alive)
	}
	if Dead.String() != "Dead" || Alive.String() != "Alive" {
		t.Errorf("unexpected names %q %q", Dead.String(), Alive.String())
	}
}
