package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

type emptyScene struct{ seed int64 }

func (emptyScene) ID() string { return "zz-empty" }
func (emptyScene) Title() string { return "Empty" }
func (emptyScene) WorldBounds() core.Bounds { return core.Bounds{W: 10, H: 10} }
func (emptyScene) Populate(*engine.Loop) {}

func TestRegisterCreate(t *testing.T) {
	Register(Info{ID: "zz-empty", Title: "Empty"}, func(opts Options) (engine.Scene, error) {
		return emptyScene{seed: opts.Seed}, nil
	})
	Register(Info{ID: "zz-broken", Title: "Broken"}, func(Options) (engine.Scene, error) {
		return nil, errors.New("boom")
	})

	if !Exists("zz-empty") {
		t.Fatal("Exists() should find a registered scene")
	}

	s, err := Create("zz-empty", Options{Seed: 7})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.(emptyScene).seed != 7 {
		t.Error("Create() should pass options to the factory")
	}

	if _, err := Create("zz-broken", Options{}); err == nil {
		t.Error("factory errors should propagate")
	}
	if _, err := Create("zz-missing", Options{}); err == nil {
		t.Error("unknown id should be an error")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Info{ID: "zz-dup"}, func(Options) (engine.Scene, error) { return emptyScene{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(Info{ID: "zz-dup"}, func(Options) (engine.Scene, error) { return emptyScene{}, nil })
}
