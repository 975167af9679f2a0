package registry

import (
	"testing"

	"github.com/vovakirdan/rockfall/internal/shaft"
)

type fakeSolver struct{ id string }

func (f fakeSolver) ID() string    { return f.id }
func (f fakeSolver) Title() string { return "Fake " + f.id }
func (f fakeSolver) Height(_ shaft.Pattern, n int64) shaft.Result {
	return shaft.Result{Pieces: n, Height: n}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("fake-b", func() Solver { return fakeSolver{"fake-b"} })
	Register("fake-a", func() Solver { return fakeSolver{"fake-a"} })

	if !Exists("fake-a") {
		t.Fatal("fake-a should be registered")
	}

	s, err := Create("fake-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := s.Height(nil, 7).Height; got != 7 {
		t.Errorf("Height = %d, want 7", got)
	}

	list := List()
	if len(list) != 2 || list[0].ID != "fake-a" || list[1].Title != "Fake fake-b" {
		t.Errorf("List() = %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown solver")
	}
}
