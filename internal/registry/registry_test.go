package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/folio-runner/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	var got Options
	Register("stub-create", "Stub", func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "stub-create"}, nil
	})

	if !Exists("stub-create") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("stub-create", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-create" || got.Difficulty != "hard" {
		t.Errorf("factory not called with options: %+v", got)
	}
	if Title("stub-create") != "Stub" {
		t.Errorf("Title() = %q", Title("stub-create"))
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-create" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include registered game")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("nope", Options{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}

	boom := errors.New("boom")
	Register("stub-broken", "Broken", func(Options) (Game, error) { return nil, boom })
	if _, err := Create("stub-broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })
}
