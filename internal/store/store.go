// Package store persists analysis records on disk. Each Analysis is
// stored verbatim as one YAML document keyed by a generated identifier;
// the analysis engine itself never touches the store.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/parsererror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// AnalysisStore saves and loads Analysis aggregates under a base
// directory, one YAML file per analysis.
type AnalysisStore struct {
	Directory string
}

// NewAnalysisStore creates a store rooted at the given directory.
func NewAnalysisStore(directory string) *AnalysisStore {
	return &AnalysisStore{Directory: directory}
}

// Save writes the analysis and returns the generated identifier.
func (s *AnalysisStore) Save(analysis *models.Analysis) (string, error) {
	id := uuid.New().String()
	if err := s.SaveAs(id, analysis); err != nil {
		return "", err
	}
	return id, nil
}

// SaveAs writes the analysis under an explicit identifier, overwriting
// any previous record with the same id.
func (s *AnalysisStore) SaveAs(id string, analysis *models.Analysis) error {
	if err := os.MkdirAll(s.Directory, 0o755); err != nil {
		return &parsererror.StoreError{ID: id, Op: "save", Err: err}
	}

	data, err := yaml.Marshal(analysis)
	if err != nil {
		return &parsererror.StoreError{ID: id, Op: "save", Err: err}
	}
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return &parsererror.StoreError{ID: id, Op: "save", Err: err}
	}

	log.WithFields(logrus.Fields{
		"id":   id,
		"file": analysis.FileName,
	}).Info("Saved analysis")
	return nil
}

// Load reads the analysis stored under id.
func (s *AnalysisStore) Load(id string) (*models.Analysis, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, &parsererror.StoreError{ID: id, Op: "load", Err: err}
	}

	var analysis models.Analysis
	if err := yaml.Unmarshal(data, &analysis); err != nil {
		return nil, &parsererror.StoreError{ID: id, Op: "load", Err: err}
	}
	return &analysis, nil
}

// List returns the identifiers of all stored analyses.
func (s *AnalysisStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &parsererror.StoreError{Op: "list", Err: err}
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	return ids, nil
}

// Delete removes the analysis stored under id.
func (s *AnalysisStore) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		return &parsererror.StoreError{ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (s *AnalysisStore) path(id string) string {
	return filepath.Join(s.Directory, id+".yaml")
}
