package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ewanmak/junket/internal/logger"
	"github.com/ewanmak/junket/internal/models"
)

// JSONStore persists the plan as a single JSON document. This is the
// canonical backing format; the file schema is fixed by the json tags
// on models.Plan.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultPlan())
}

// Load reads the persisted plan. A missing or unparseable file falls
// back to the seed dataset: the session must always start usable.
func (s *JSONStore) Load() (*models.Plan, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no persisted plan, using seed dataset", "path", s.path)
			return models.DefaultPlan(), nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	p := &models.Plan{}
	if err := json.Unmarshal(data, p); err != nil {
		logger.Warn("persisted plan is malformed, using seed dataset", "path", s.path, "error", err)
		return models.DefaultPlan(), nil
	}

	normalize(p)
	return p, nil
}

// Save replaces the file wholesale. The document is written to a temp
// file and renamed into place so a crash mid-write never leaves a
// truncated store behind.
func (s *JSONStore) Save(p *models.Plan) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) DataPath() string {
	return s.path
}

// normalize repairs the structural invariants of a loaded plan: the
// schedule map exists, every day has an entry, and entries without a
// matching day are dropped.
func normalize(p *models.Plan) {
	if p.Schedule == nil {
		p.Schedule = make(map[string][]models.Event)
	}
	for _, d := range p.Days {
		if _, ok := p.Schedule[d.ID]; !ok {
			p.Schedule[d.ID] = []models.Event{}
		}
	}
	for dayID := range p.Schedule {
		if _, ok := p.DayByID(dayID); !ok {
			delete(p.Schedule, dayID)
		}
	}
}
