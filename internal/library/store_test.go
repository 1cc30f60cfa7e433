package library

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/peralt/cerealstyle-mcp/internal/style"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testSkeleton(t *testing.T, prompt string, cat style.Category) style.PromptSkeleton {
	t.Helper()
	rec, weights := style.Parse(prompt)
	transformed, err := style.Apply(rec, cat)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	sk, err := style.BuildSkeleton(transformed, weights)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return sk
}

func TestStoreSaveGetRoundTrip(t *testing.T) {
	store := testStore(t)
	sk := testSkeleton(t, "a tired chef tasting soup", style.MascotTheater)

	saved, err := store.Save("chef-mascot", sk)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("saved skeleton should have an id")
	}
	if saved.Category != style.MascotTheater {
		t.Errorf("expected category mascot_theater, got %s", saved.Category)
	}

	got, err := store.Get("chef-mascot")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if diff := cmp.Diff(sk, got.Skeleton); diff != "" {
		t.Errorf("skeleton round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreUpsertKeepsID(t *testing.T) {
	store := testStore(t)
	first, err := store.Save("slot", testSkeleton(t, "a tired chef tasting soup", style.MascotTheater))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second, err := store.Save("slot", testSkeleton(t, "a legendary dragon on an epic quest", style.AdventureFantasy))
	if err != nil {
		t.Fatalf("re-save failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert changed the id: %s vs %s", first.ID, second.ID)
	}
	if second.Category != style.AdventureFantasy {
		t.Errorf("upsert did not replace category, got %s", second.Category)
	}
}

func TestStoreListWithPattern(t *testing.T) {
	store := testStore(t)
	sk := testSkeleton(t, "a tired chef tasting soup", style.MascotTheater)
	for _, name := range []string{"mascot-chef", "mascot-tiger", "premium-watch"} {
		if _, err := store.Save(name, sk); err != nil {
			t.Fatalf("save %s failed: %v", name, err)
		}
	}

	all, err := store.List("")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 skeletons, got %d", len(all))
	}

	mascots, err := store.List("mascot-*")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(mascots) != 2 {
		t.Errorf("expected 2 mascot skeletons, got %d", len(mascots))
	}
	for _, s := range mascots {
		if s.Name != "mascot-chef" && s.Name != "mascot-tiger" {
			t.Errorf("unexpected name in filtered list: %s", s.Name)
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := testStore(t)
	if _, err := store.Save("gone", testSkeleton(t, "a tired chef tasting soup", style.MascotTheater)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Delete("gone"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get("gone"); err == nil {
		t.Error("expected error getting deleted skeleton")
	}
	if err := store.Delete("gone"); err == nil {
		t.Error("expected error deleting missing skeleton")
	}
}
