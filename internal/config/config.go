// Package config loads the engine's default Options (internal/scansion)
// and HTTP-surface tuning knobs from an embedded YAML document, with
// sync.Once caching so repeated lookups in a long-running server don't
// re-parse the document (grounded on the teacher's prefilter_config.go
// singleton pattern).
package config

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MaxYAMLFileSize bounds config documents accepted by Load, mirroring
// the teacher's file-size guard for untrusted YAML input.
const MaxYAMLFileSize = 1 << 20 // 1 MiB

// EngineDefaults is the on-disk shape of the engine's default tuning
// knobs: the fuzzy error budget, the analysis-level thresholds the
// HTTP surface uses to grade a request (spec.md §6), and the islah
// response's syllable/foot cutoffs.
type EngineDefaults struct {
	// ErrorParam is the default fuzzy-mode Levenshtein threshold.
	ErrorParam int `yaml:"error_param"`

	// AnalysisLevels controls POST /api/islah's syllables/feet/meter
	// grading thresholds.
	AnalysisLevels AnalysisLevelThresholds `yaml:"analysis_levels"`

	// CacheEnabled toggles the optional Badger-backed catalog-lookup
	// memoization layer (internal/cache).
	CacheEnabled bool `yaml:"cache_enabled"`

	// CacheDir is the on-disk path for the Badger database when
	// CacheEnabled is true.
	CacheDir string `yaml:"cache_dir"`
}

// AnalysisLevelThresholds are the minimum-richness cutoffs spec.md §6
// describes for POST /api/islah's graded response.
type AnalysisLevelThresholds struct {
	MinWordsForSyllables    int `yaml:"min_words_for_syllables"`
	MinSyllablesForSyllable int `yaml:"min_syllables_for_syllables"`
	MinSyllablesForFeet     int `yaml:"min_syllables_for_feet"`
	MinFeetForFeet          int `yaml:"min_feet_for_feet"`
	MinFeetForMeter         int `yaml:"min_feet_for_meter"`
}

var (
	mu        sync.RWMutex
	once      sync.Once
	cached    *EngineDefaults
	cachedErr error
)

// Defaults returns the cached EngineDefaults, loading the embedded
// document on first call.
func Defaults() (*EngineDefaults, error) {
	mu.RLock()
	if cached != nil || cachedErr != nil {
		d, err := cached, cachedErr
		mu.RUnlock()
		return d, err
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if cached != nil || cachedErr != nil {
		return cached, cachedErr
	}

	once.Do(func() {
		cached, cachedErr = Load(defaultsYAML)
	})
	return cached, cachedErr
}

// Reset clears the cached defaults so tests can reload with different
// data.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
	cachedErr = nil
	once = sync.Once{}
}

// Load parses and validates an EngineDefaults document from raw YAML,
// applying fallback values for anything left unset.
func Load(data []byte) (*EngineDefaults, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("config: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("config: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var d EngineDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}

	if d.ErrorParam <= 0 {
		d.ErrorParam = 6
	}
	al := &d.AnalysisLevels
	if al.MinWordsForSyllables <= 0 {
		al.MinWordsForSyllables = 1
	}
	if al.MinSyllablesForSyllable <= 0 {
		al.MinSyllablesForSyllable = 2
	}
	if al.MinSyllablesForFeet <= 0 {
		al.MinSyllablesForFeet = 4
	}
	if al.MinFeetForFeet <= 0 {
		al.MinFeetForFeet = 1
	}
	if al.MinFeetForMeter <= 0 {
		al.MinFeetForMeter = 3
	}
	if d.CacheDir == "" {
		d.CacheDir = "./aruuz-cache"
	}

	return &d, nil
}
