package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/ztrix/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Description() string { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create(stub_a) error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	// Each call yields a fresh instance
	g.Step(core.NewInputFrame())
	g2, _ := Create("stub_a")
	if g2.State().Score != 0 {
		t.Errorf("second instance Score = %d, expected 0", g2.State().Score)
	}

	info, ok := Info("stub_b")
	if !ok || info.Title != "Stub stub_b" || info.Description != "a stub" {
		t.Errorf("Info(stub_b) = %+v, %v", info, ok)
	}

	var ids []string
	for _, gi := range List() {
		ids = append(ids, gi.ID)
	}
	ia, ib := slices.Index(ids, "stub_a"), slices.Index(ids, "stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() ids = %v, expected stub_a before stub_b", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists(no_such_game) = true, expected false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
