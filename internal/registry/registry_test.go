package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                      { return g.id }
func (g stubGame) Title() string                                   { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                        {}
func (g stubGame) Step(core.InputFrame, time.Time) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                             {}
func (g stubGame) State() core.GameState                           { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" && info.Title == "Stub zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game with its title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
