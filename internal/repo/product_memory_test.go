package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func TestInMemoryCreateAssignsUniqueIDs(t *testing.T) {
	r := NewInMemoryProductRepository()

	first, err := r.Create(models.Product{Name: "Widget", Price: 9.99, ImageURL: "http://x/a.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Create(models.Product{Name: "Gadget", Price: 19.99, ImageURL: "http://x/b.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Error("expected assigned ids")
	}
	if first.ID == second.ID {
		t.Errorf("expected unique ids, both are %d", first.ID)
	}
	if first.Name != "Widget" || first.Price != 9.99 || first.ImageURL != "http://x/a.png" {
		t.Errorf("created product does not echo input: %+v", first)
	}
}

func TestInMemoryGetByIDRoundTrip(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, _ := r.Create(models.Product{Name: "Widget", Price: 9.99, ImageURL: "http://x/a.png"})

	fetched, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched != created {
		t.Errorf("expected %+v, got %+v", created, fetched)
	}
}

func TestInMemoryGetByIDMissing(t *testing.T) {
	r := NewInMemoryProductRepository()

	if _, err := r.GetByID(42); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryUpdateOverwritesFields(t *testing.T) {
	r := NewInMemoryProductRepository()

	desc := "a fine widget"
	created, _ := r.Create(models.Product{Name: "Widget", Description: &desc, Price: 9.99, ImageURL: "http://x/a.png"})

	updated, err := r.Update(models.Product{ID: created.ID, Name: "Widget2", Price: 19.99, ImageURL: "http://x/b.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("expected id %d to be unchanged, got %d", created.ID, updated.ID)
	}
	if updated.Name != "Widget2" || updated.Price != 19.99 || updated.ImageURL != "http://x/b.png" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Error("expected description to be preserved by update")
	}

	fetched, _ := r.GetByID(created.ID)
	if fetched != updated {
		t.Errorf("expected stored product %+v, got %+v", updated, fetched)
	}
}

func TestInMemoryUpdateMissing(t *testing.T) {
	r := NewInMemoryProductRepository()

	if _, err := r.Update(models.Product{ID: 42, Name: "Ghost"}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryDeleteThenGet(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, _ := r.Create(models.Product{Name: "Widget", Price: 9.99, ImageURL: "http://x/a.png"})

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.GetByID(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := r.Delete(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound deleting twice, got %v", err)
	}
}

func TestInMemorySearchByName(t *testing.T) {
	r := NewInMemoryProductRepository()

	names := []string{"Widget", "Gadget", "Gizmo"}
	for _, n := range names {
		r.Create(models.Product{Name: n, Price: 1, ImageURL: "http://x/p.png"})
	}

	t.Run("Empty substring matches all", func(t *testing.T) {
		all, _ := r.GetAll()
		matches, err := r.SearchByName("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != len(all) {
			t.Errorf("expected %d matches, got %d", len(all), len(matches))
		}
	})

	t.Run("Unique substring matches one", func(t *testing.T) {
		matches, _ := r.SearchByName("izm")
		if len(matches) != 1 || matches[0].Name != "Gizmo" {
			t.Errorf("expected exactly 'Gizmo', got %v", matches)
		}
	})

	t.Run("Match is case-insensitive", func(t *testing.T) {
		matches, _ := r.SearchByName("gAdGeT")
		if len(matches) != 1 || matches[0].Name != "Gadget" {
			t.Errorf("expected exactly 'Gadget', got %v", matches)
		}
	})

	t.Run("No match", func(t *testing.T) {
		matches, _ := r.SearchByName("xyz")
		if len(matches) != 0 {
			t.Errorf("expected no matches, got %v", matches)
		}
	})
}
