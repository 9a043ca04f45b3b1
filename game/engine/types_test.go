package engine

import "testing"

func TestStatusConstants(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
		terminal bool
	}{
		{StatusInProgress, "in_progress", false},
		{StatusWon, "won", true},
		{StatusLost, "lost", true},
	}

	for _, test := range tests {
		if string(test.status) != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, string(test.status))
		}
		if test.status.IsTerminal() != test.terminal {
			t.Errorf("%s: expected IsTerminal %v", test.status, test.terminal)
		}
	}
}

func TestGameConstants(t *testing.T) {
	if Placeholder != '_' {
		t.Errorf("Expected placeholder '_', got %q", Placeholder)
	}
	if DefaultLives != 5 {
		t.Errorf("Expected default lives 5, got %d", DefaultLives)
	}
	if MinLives > DefaultLives || DefaultLives > MaxLives {
		t.Errorf("Default lives %d outside [%d, %d]", DefaultLives, MinLives, MaxLives)
	}
}
