package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ewanmak/junket/internal/models"
)

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	store := NewJSONStore(path)

	p := models.DefaultPlan()
	p.Title = "Rehearsal Weekend"
	p.Attendees = 42
	p.Currency = models.CurrencyUSD
	p.Events = append(p.Events, models.Event{
		ID:            p.NextEventID,
		Name:          "Late Supper",
		Duration:      "2 hours",
		PerPersonCost: 299.98,
		Category:      models.CategoryFood,
	})
	p.NextEventID++
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

	last := got.Events[len(got.Events)-1]
	if last.PerPersonCost != 299.98 {
		t.Errorf("fractional cost did not survive the round trip: %v", last.PerPersonCost)
	}
}

func TestJSONStore_AbsentFileFallsBackToSeed(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, models.DefaultPlan()) {
		t.Error("absent file did not yield the seed dataset")
	}
}

func TestJSONStore_MalformedFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, models.DefaultPlan()) {
		t.Error("malformed file did not yield the seed dataset")
	}
}

func TestJSONStore_DocumentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	store := NewJSONStore(path)
	if err := store.Save(models.DefaultPlan()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"eventTitle", "eventDescription", "attendees", "currency",
		"events", "days", "schedule", "nextId", "nextDayId", "savedAt",
	}
	for _, key := range want {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing key %q", key)
		}
	}
	if len(doc) != len(want) {
		t.Errorf("document has %d keys, want %d", len(doc), len(want))
	}
}

func TestJSONStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(filepath.Join(dir, "plan.json"))
	if err := store.Save(models.DefaultPlan()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "plan.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("unexpected files after save: %v", names)
	}
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Init(); err == nil {
		t.Error("second init did not refuse the existing file")
	}
}

func TestNormalize_RepairsScheduleMap(t *testing.T) {
	p := &models.Plan{
		Days: []models.Day{{ID: "day1"}, {ID: "day2"}},
		Schedule: map[string][]models.Event{
			"day1":   {{ID: 1, Name: "Dinner"}},
			"ghost":  {{ID: 2, Name: "Orphan"}},
			"ghost2": {},
		},
	}

	normalize(p)

	if _, ok := p.Schedule["day2"]; !ok {
		t.Error("day without a schedule entry was not given one")
	}
	if _, ok := p.Schedule["ghost"]; ok {
		t.Error("schedule entry without a matching day was kept")
	}
	if len(p.Schedule) != 2 {
		t.Errorf("schedule has %d entries, want 2", len(p.Schedule))
	}
	if len(p.Schedule["day1"]) != 1 {
		t.Error("valid schedule entry was disturbed")
	}

	var empty models.Plan
	normalize(&empty)
	if empty.Schedule == nil {
		t.Error("nil schedule map not allocated")
	}
}
