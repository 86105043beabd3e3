package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ewanmak/junket/internal/models"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	p := models.DefaultPlan()
	p.Description = "Final headcount pending"
	p.Events[0].PerPersonCost = 299.98
	p.Schedule["day3"] = append(p.Schedule["day3"], p.Events[0])
	p.SavedAt = time.Now().UTC().Truncate(time.Second)

	if err := store.Save(p); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("loaded plan differs from saved plan\ngot:  %+v\nwant: %+v", got, p)
	}
}

func TestSQLiteStore_AbsentFileFallsBackToSeed(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	defer store.Close()

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, models.DefaultPlan()) {
		t.Error("absent database did not yield the seed dataset")
	}
}

func TestSQLiteStore_MalformedFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewSQLiteStore(path)
	defer store.Close()

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, models.DefaultPlan()) {
		t.Error("unreadable database did not yield the seed dataset")
	}
}

func TestSQLiteStore_SaveRewritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	p := models.DefaultPlan()
	if err := store.Save(p); err != nil {
		t.Fatal(err)
	}

	p.Title = "Revised Program"
	p.Events = p.Events[:5]
	p.Days = p.Days[:2]
	delete(p.Schedule, "day3")
	delete(p.Schedule, "day4")
	if err := store.Save(p); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Revised Program" {
		t.Errorf("title = %q, want %q", got.Title, "Revised Program")
	}
	if len(got.Events) != 5 {
		t.Errorf("events = %d, want 5: stale rows survived the rewrite", len(got.Events))
	}
	if len(got.Days) != 2 || len(got.Schedule) != 2 {
		t.Errorf("days = %d, schedule entries = %d, want 2 and 2", len(got.Days), len(got.Schedule))
	}
}

func TestSQLiteStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Init(); err == nil {
		t.Error("second init did not refuse the existing database")
	}
}

func TestSQLiteStore_PreservesOrdering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	p := models.DefaultPlan()
	if err := store.Save(p); err != nil {
		t.Fatal(err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}

	for i := range p.Events {
		if got.Events[i].ID != p.Events[i].ID {
			t.Fatalf("event order diverged at %d: %d != %d", i, got.Events[i].ID, p.Events[i].ID)
		}
	}
	for i := range p.Days {
		if got.Days[i].ID != p.Days[i].ID {
			t.Fatalf("day order diverged at %d: %s != %s", i, got.Days[i].ID, p.Days[i].ID)
		}
	}
	for _, d := range p.Days {
		want := p.Schedule[d.ID]
		gotItems := got.Schedule[d.ID]
		if len(gotItems) != len(want) {
			t.Fatalf("%s has %d items, want %d", d.ID, len(gotItems), len(want))
		}
		for i := range want {
			if gotItems[i].ID != want[i].ID {
				t.Errorf("%s item %d = event %d, want %d", d.ID, i, gotItems[i].ID, want[i].ID)
			}
		}
	}
}
