package registry

import (
	"testing"

	"github.com/vovakirdan/penguin-ski/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterKeepsOrder(t *testing.T) {
	ids := []string{"zeta-test", "alpha-test", "mid-test"}
	for _, id := range ids {
		id := id
		Register(id, func() Game { return stubGame{id: id} })
	}

	var got []string
	for _, info := range List() {
		for _, id := range ids {
			if info.ID == id {
				got = append(got, info.ID)
				if info.Title != "Stub "+id {
					t.Errorf("title for %s = %q", id, info.Title)
				}
			}
		}
	}
	if len(got) != len(ids) {
		t.Fatalf("List() returned %v", got)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("List() order = %v, expected %v", got, ids)
			break
		}
	}
}

func TestCreate(t *testing.T) {
	Register("create-test", func() Game { return stubGame{id: "create-test"} })

	g, err := Create("create-test")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "create-test" {
		t.Errorf("ID() = %q", g.ID())
	}
	if !Exists("create-test") || Exists("missing-test") {
		t.Error("Exists() mismatch")
	}
	if _, err := Create("missing-test"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return stubGame{id: "dup-test"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Game { return stubGame{id: "dup-test"} })
}
