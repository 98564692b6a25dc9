// Package loader walks a checkout of the prompts repository and produces
// the desired-state records for the collection.
//
// The repository layout is prompts/<feature>/<version>/<model>.json with a
// sibling <model>.md carrying the prompt text.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefox-ai/prompts-sync/internal/remotesettings"
)

// ErrMissingDirectory indicates the expected prompts directory is absent
// from the checkout.
var ErrMissingDirectory = errors.New("prompts directory not found")

// promptsDirName is the top-level directory holding prompt definitions.
const promptsDirName = "prompts"

// metadata is the schema of each <model>.json file.
type metadata struct {
	Feature    string         `json:"feature"`
	Model      string         `json:"model"`
	Parameters map[string]any `json:"parameters"`
}

// Load walks the checkout rooted at root and returns one record per
// metadata/prompt file pair. Traversal order is not meaningful.
func Load(root string) ([]remotesettings.Record, error) {
	promptsDir := filepath.Join(root, promptsDirName)
	if _, err := os.Stat(promptsDir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrMissingDirectory, promptsDir)
		}
		return nil, fmt.Errorf("failed to stat prompts directory: %w", err)
	}

	var records []remotesettings.Record
	features, err := os.ReadDir(promptsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts directory: %w", err)
	}
	for _, feature := range features {
		if !feature.IsDir() {
			continue
		}
		featureDir := filepath.Join(promptsDir, feature.Name())
		versions, err := os.ReadDir(featureDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read feature directory %s: %w", feature.Name(), err)
		}
		for _, version := range versions {
			if !version.IsDir() {
				continue
			}
			versionDir := filepath.Join(featureDir, version.Name())
			versionRecords, err := loadVersion(versionDir, version.Name())
			if err != nil {
				return nil, err
			}
			records = append(records, versionRecords...)
		}
	}
	return records, nil
}

// loadVersion reads every metadata/prompt pair inside one version directory.
func loadVersion(dir, version string) ([]remotesettings.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read version directory %s: %w", dir, err)
	}

	var records []remotesettings.Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		model := strings.TrimSuffix(entry.Name(), ".json")
		record, err := readRecord(dir, model, version)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// readRecord builds one record from a <model>.json / <model>.md pair.
func readRecord(dir, model, version string) (remotesettings.Record, error) {
	metadataPath := filepath.Join(dir, model+".json")
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		return remotesettings.Record{}, fmt.Errorf("failed to read metadata %s: %w", metadataPath, err)
	}
	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return remotesettings.Record{}, fmt.Errorf("failed to parse metadata %s: %w", metadataPath, err)
	}

	promptPath := filepath.Join(dir, model+".md")
	prompt, err := os.ReadFile(promptPath)
	if err != nil {
		return remotesettings.Record{}, fmt.Errorf("failed to read prompt %s: %w", promptPath, err)
	}

	// Parameters stay serialized so the record is flat for transport.
	parameters, err := json.Marshal(meta.Parameters)
	if err != nil {
		return remotesettings.Record{}, fmt.Errorf("failed to serialize parameters for %s: %w", metadataPath, err)
	}

	return remotesettings.Record{
		ID:         RecordID(meta.Feature, meta.Model, version),
		Feature:    meta.Feature,
		Model:      meta.Model,
		Prompts:    string(prompt),
		Parameters: string(parameters),
	}, nil
}

// RecordID derives the deterministic record identifier from its semantic
// components. Dots in the model name are replaced so the name cannot
// collide with the "--" join separator.
func RecordID(feature, model, version string) string {
	return feature + "--" + strings.ReplaceAll(model, ".", "-") + "--" + version
}
