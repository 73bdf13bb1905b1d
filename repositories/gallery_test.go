package repositories

import "testing"

func TestGalleryPrependsNewItems(t *testing.T) {
	repo := NewGalleryRepository()

	repo.Add("data:image/png;base64,first", "make it red")
	repo.Add("data:image/png;base64,second", "")

	items := repo.List()
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	if items[0].ImageURL != "data:image/png;base64,second" {
		t.Fatal("expected the newest item first")
	}
	if items[0].Prompt != "" {
		t.Fatalf("expected verbatim empty prompt, got %q", items[0].Prompt)
	}
	if items[0].ID == items[1].ID {
		t.Fatal("expected distinct item ids")
	}
}

func TestGalleryListReturnsSnapshot(t *testing.T) {
	repo := NewGalleryRepository()
	repo.Add("data:image/png;base64,x", "p")

	items := repo.List()
	items[0].Prompt = "mutated"

	if repo.List()[0].Prompt == "mutated" {
		t.Fatal("mutating the returned slice must not affect the store")
	}
}
