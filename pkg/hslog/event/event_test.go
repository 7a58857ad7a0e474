package event

import "testing"

func TestParseType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Type
		wantOK bool
	}{
		{"action exact", "action", Action, true},
		{"match_start exact", "match_start", MatchStart, true},
		{"match_over exact", "match_over", MatchOver, true},

		{"uppercase ACTION", "ACTION", Action, true},
		{"mixed case Match_Start", "Match_Start", MatchStart, true},

		{"leading space", " match_over", MatchOver, true},
		{"tab", "\taction\t", Action, true},

		{"unknown type", "unknown", "", false},
		{"empty string", "", "", false},
		{"internal space", "match start", "", false},
		{"dash", "match-start", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseType(tt.input)
			if ok != tt.wantOK {
				t.Errorf("ParseType(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypeNames_Sorted(t *testing.T) {
	names := TypeNames()
	if len(names) != 3 {
		t.Fatalf("TypeNames() len = %d, want 3", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("TypeNames() not sorted: %q > %q", names[i-1], names[i])
		}
	}
}

func TestPlayer_Merge(t *testing.T) {
	p := Player{Team: 1, Hero: "Rexxar", Class: "hunter", Side: Friendly}
	p.Merge(Player{Team: 1, Name: "Player1"})

	want := Player{Team: 1, Name: "Player1", Hero: "Rexxar", Class: "hunter", Side: Friendly}
	if p != want {
		t.Errorf("Merge() = %+v, want %+v", p, want)
	}
}

func TestPlayer_MergeOverwrites(t *testing.T) {
	p := Player{Name: "Player1", Status: Lost}
	p.Merge(Player{Name: "Player1", Status: Won})
	if p.Status != Won {
		t.Errorf("Status = %q, want %q", p.Status, Won)
	}
}

func TestPlayer_MergeKeepsKnownFields(t *testing.T) {
	p := Player{Team: 2, Name: "Player2", Side: Opposing}
	p.Merge(Player{})
	if p.Team != 2 || p.Name != "Player2" || p.Side != Opposing {
		t.Errorf("Merge(empty) changed player: %+v", p)
	}
}

func TestPlayer_HasTeam(t *testing.T) {
	tests := []struct {
		team int
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
	}
	for _, tt := range tests {
		if got := (Player{Team: tt.team}).HasTeam(); got != tt.want {
			t.Errorf("Player{Team: %d}.HasTeam() = %v, want %v", tt.team, got, tt.want)
		}
	}
}
