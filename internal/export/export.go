// Package export renders the schedule for sharing: a CSV with one row
// per scheduled event, and a JSON snapshot in the persisted schema.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ewanmak/junket/internal/budget"
	"github.com/ewanmak/junket/internal/models"
)

// CSVFilename derives the export filename from the plan title:
// lowercased, spaces replaced with hyphens, suffixed "-schedule.csv".
func CSVFilename(p *models.Plan) string {
	return strings.ToLower(strings.ReplaceAll(p.Title, " ", "-")) + "-schedule.csv"
}

// ScheduleCSV renders one row per scheduled event, in day order then
// schedule order. Cost is the computed event cost for the current
// attendee count, not a stored value; Category is the human label.
func ScheduleCSV(p *models.Plan) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Day", "Event", "Duration", "Category", "Cost"}); err != nil {
		return nil, err
	}

	for _, day := range p.Days {
		for _, e := range p.Schedule[day.ID] {
			cost := budget.EventCost(e, p.Attendees)
			record := []string{
				day.Label,
				e.Name,
				e.Duration,
				e.Category.Label(),
				strconv.FormatFloat(cost, 'f', -1, 64),
			}
			if err := writer.Write(record); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteScheduleCSV writes the CSV export next to the current working
// directory (or to an explicit path) and returns the path used.
func WriteScheduleCSV(p *models.Plan, path string) (string, error) {
	if path == "" {
		path = CSVFilename(p)
	}
	data, err := ScheduleCSV(p)
	if err != nil {
		return "", fmt.Errorf("failed to render CSV: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return path, nil
}

// PlanJSON renders the plan in the persisted file schema.
func PlanJSON(p *models.Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// WritePlanJSON writes a JSON snapshot of the plan state.
func WritePlanJSON(p *models.Plan, path string) (string, error) {
	if path == "" {
		path = strings.ToLower(strings.ReplaceAll(p.Title, " ", "-")) + "-plan.json"
	}
	data, err := PlanJSON(p)
	if err != nil {
		return "", fmt.Errorf("failed to render JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON: %w", err)
	}
	return path, nil
}
