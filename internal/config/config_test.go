package config

import "testing"

func TestDefaultsLoadsEmbeddedDocument(t *testing.T) {
	Reset()
	defer Reset()

	d, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if d.ErrorParam <= 0 {
		t.Errorf("ErrorParam = %d, want a positive fallback-or-configured value", d.ErrorParam)
	}
	if d.CacheDir == "" {
		t.Error("CacheDir should never be empty after Load applies fallbacks")
	}
}

func TestDefaultsIsCached(t *testing.T) {
	Reset()
	defer Reset()

	first, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	second, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if first != second {
		t.Error("Defaults should return the same cached pointer on repeated calls")
	}
}

func TestLoadRejectsEmptyData(t *testing.T) {
	if _, err := Load(nil); err == nil {
		t.Fatal("Load(nil) should error")
	}
	if _, err := Load([]byte{}); err == nil {
		t.Fatal("Load([]byte{}) should error")
	}
}

func TestLoadRejectsOversizedData(t *testing.T) {
	huge := make([]byte, MaxYAMLFileSize+1)
	for i := range huge {
		huge[i] = ' '
	}
	if _, err := Load(huge); err == nil {
		t.Fatal("Load should reject a document over MaxYAMLFileSize")
	}
}

func TestLoadAppliesFallbacksForZeroValues(t *testing.T) {
	d, err := Load([]byte("error_param: 0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.ErrorParam != 6 {
		t.Errorf("ErrorParam = %d, want fallback 6", d.ErrorParam)
	}
	if d.AnalysisLevels.MinWordsForSyllables != 1 {
		t.Errorf("MinWordsForSyllables = %d, want fallback 1", d.AnalysisLevels.MinWordsForSyllables)
	}
	if d.AnalysisLevels.MinFeetForMeter != 3 {
		t.Errorf("MinFeetForMeter = %d, want fallback 3", d.AnalysisLevels.MinFeetForMeter)
	}
	if d.CacheDir != "./aruuz-cache" {
		t.Errorf("CacheDir = %q, want fallback \"./aruuz-cache\"", d.CacheDir)
	}
}

func TestLoadPreservesExplicitValues(t *testing.T) {
	d, err := Load([]byte("error_param: 3\ncache_enabled: true\ncache_dir: /tmp/custom\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.ErrorParam != 3 {
		t.Errorf("ErrorParam = %d, want 3 (explicit value, not overridden by fallback)", d.ErrorParam)
	}
	if !d.CacheEnabled {
		t.Error("CacheEnabled should be true as configured")
	}
	if d.CacheDir != "/tmp/custom" {
		t.Errorf("CacheDir = %q, want /tmp/custom", d.CacheDir)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := Load([]byte("error_param: [unterminated\n")); err == nil {
		t.Fatal("Load should error on malformed YAML")
	}
}

func TestResetForcesReload(t *testing.T) {
	Reset()
	defer Reset()

	first, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	Reset()
	second, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if first == second {
		t.Error("Reset should force Defaults to produce a fresh pointer on next call")
	}
}
