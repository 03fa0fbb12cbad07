package assets

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	if len(cat.Skills) != 8 {
		t.Fatalf("got %d skills, want 8", len(cat.Skills))
	}
	if cat.Skills[0].ID != "javascript" {
		t.Errorf("first skill = %q, want javascript (order must be preserved)", cat.Skills[0].ID)
	}
	for _, id := range []string{"first-click", "combo-master", "boss-slayer", "untouchable"} {
		if _, ok := cat.Achievement(id); !ok {
			t.Errorf("achievement %q missing", id)
		}
	}
	if s, ok := cat.Skill("go"); !ok || s.Name != "Go" {
		t.Errorf("Skill(go) = %+v, %v", s, ok)
	}
}

func TestLoadCatalogRejectsBadInput(t *testing.T) {
	ach := []byte("achievements:\n  - id: a\n    title: A\n")
	tests := []struct {
		name    string
		skills  string
		ach     []byte
		invalid bool
	}{
		{name: "no skills", skills: "skills: []\n", ach: ach, invalid: true},
		{name: "missing id", skills: "skills:\n  - name: Go\n", ach: ach, invalid: true},
		{name: "duplicate skill", skills: "skills:\n  - {id: go, name: Go}\n  - {id: go, name: Go}\n", ach: ach, invalid: true},
		{name: "duplicate achievement", skills: "skills:\n  - {id: go, name: Go}\n", ach: []byte("achievements:\n  - {id: a, title: A}\n  - {id: a, title: B}\n"), invalid: true},
		{name: "malformed yaml", skills: "skills: [", ach: ach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.skills), tt.ach)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidCatalog); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidCatalog) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}
