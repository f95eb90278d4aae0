package app

import "testing"

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "Idle"},
		{PhaseDraining, "Draining"},
		{PhaseLimitReached, "LimitReached"},
		{PhaseExhausted, "Exhausted"},
		{PhaseCompleted, "Completed"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		to   Phase
		want bool
	}{
		{"idle to draining", PhaseIdle, PhaseDraining, true},
		{"draining to limit reached", PhaseDraining, PhaseLimitReached, true},
		{"draining to exhausted", PhaseDraining, PhaseExhausted, true},
		{"limit reached to completed", PhaseLimitReached, PhaseCompleted, true},
		{"exhausted to completed", PhaseExhausted, PhaseCompleted, true},
		{"idle to completed", PhaseIdle, PhaseCompleted, false},
		{"idle to exhausted", PhaseIdle, PhaseExhausted, false},
		{"draining to completed", PhaseDraining, PhaseCompleted, false},
		{"draining to idle", PhaseDraining, PhaseIdle, false},
		{"completed to draining", PhaseCompleted, PhaseDraining, false},
		{"exhausted to limit reached", PhaseExhausted, PhaseLimitReached, false},
		{"unknown phase", Phase(99), PhaseDraining, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
