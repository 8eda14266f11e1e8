package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tinypix/internal/core"
)

type stubScene struct{ id string }

func (s stubScene) ID() string                      { return s.id }
func (s stubScene) Title() string                   { return "Stub " + s.id }
func (stubScene) Reset(core.RuntimeConfig)          {}
func (stubScene) Step(core.InputFrame)              {}
func (stubScene) Focus() core.WorldPos              { return core.WorldPos{} }
func (stubScene) Draw(*core.Camera, *core.Viewport) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Scene { return stubScene{id: "zz-stub"} })
	Register("aa-stub", func() Scene { return stubScene{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}

	s, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected zz-stub", s.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	first, last := -1, -1
	for i, id := range ids {
		switch id {
		case "aa-stub":
			first = i
		case "zz-stub":
			last = i
		}
	}
	if first == -1 || last == -1 || first > last {
		t.Errorf("List() = %v, expected sorted IDs containing both stubs", ids)
	}
	if list[first].Title != "Stub aa-stub" {
		t.Errorf("Title = %q, expected %q", list[first].Title, "Stub aa-stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Create() error = %v, expected %v", err, ErrUnknownScene)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Scene { return stubScene{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Scene { return stubScene{id: "dup-stub"} })
}
