package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ewanmak/junket/internal/models"
)

func TestCSVFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"IAPN 2027 May 21-24", "iapn-2027-may-21-24-schedule.csv"},
		{"Weekend Retreat", "weekend-retreat-schedule.csv"},
		{"solo", "solo-schedule.csv"},
		{"", "-schedule.csv"},
	}
	for _, tt := range tests {
		p := &models.Plan{Title: tt.title}
		if got := CSVFilename(p); got != tt.want {
			t.Errorf("CSVFilename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestScheduleCSV_Rows(t *testing.T) {
	p := &models.Plan{
		Attendees: 100,
		Days: []models.Day{
			{ID: "day1", Label: "Day 1"},
			{ID: "day2", Label: "Day 2"},
		},
		Schedule: map[string][]models.Event{
			"day1": {
				{ID: 1, Name: "Welcome Dinner", Duration: "3 hours", PerPersonCost: 1180, MinimumCost: 140000, Category: models.CategoryFood},
			},
			"day2": {
				{ID: 2, Name: "Harbour Cruise", Duration: "2 hours", PerPersonCost: 299.98, Category: models.CategoryTravel},
				{ID: 3, Name: "Auction Viewing", Duration: "1 hour", Category: models.CategoryEntertainment},
			},
		},
	}

	data, err := ScheduleCSV(p)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"Day", "Event", "Duration", "Category", "Cost"},
		{"Day 1", "Welcome Dinner", "3 hours", "Food & Beverage", "140000"},
		{"Day 2", "Harbour Cruise", "2 hours", "Travel", "29998"},
		{"Day 2", "Auction Viewing", "1 hour", "Entertainment", "0"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("record %d field %d = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}

func TestScheduleCSV_SeedDataset(t *testing.T) {
	p := models.DefaultPlan()
	data, err := ScheduleCSV(p)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 15 {
		t.Errorf("seed export has %d records, want header plus 14 items", len(records))
	}
	if records[1][0] != "Day 1" || records[1][1] != "Welcome Reception in Murray" {
		t.Errorf("first row = %v", records[1])
	}
}

func TestWriteScheduleCSV_DefaultsToDerivedName(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	p := models.DefaultPlan()
	path, err := WriteScheduleCSV(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if path != "iapn-2027-may-21-24-schedule.csv" {
		t.Errorf("derived path = %q", path)
	}
	if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
		t.Errorf("export file not written: %v", err)
	}
}

func TestWritePlanJSON_MatchesPersistedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	p := models.DefaultPlan()

	got, err := WritePlanJSON(p, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Title     string `json:"eventTitle"`
		Attendees int    `json:"attendees"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Title != p.Title || doc.Attendees != p.Attendees {
		t.Errorf("snapshot fields = %q / %d", doc.Title, doc.Attendees)
	}
}
