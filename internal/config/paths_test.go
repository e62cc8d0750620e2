package config

import (
	"strings"
	"testing"
)

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Fatal("ConfigPath() returned empty string")
	}
	if !strings.HasSuffix(path, configFile) {
		t.Errorf("ConfigPath() = %s, want suffix %s", path, configFile)
	}
	if !strings.Contains(path, appName) {
		t.Errorf("ConfigPath() = %s, want to contain %s", path, appName)
	}
}

func TestHistoryPath(t *testing.T) {
	path := HistoryPath()
	if !strings.HasSuffix(path, historyFile) {
		t.Errorf("HistoryPath() = %s, want suffix %s", path, historyFile)
	}
}

func TestDefaultBrewfilePath(t *testing.T) {
	path := DefaultBrewfilePath()
	if !strings.HasSuffix(path, brewfileName) {
		t.Errorf("DefaultBrewfilePath() = %s, want suffix %s", path, brewfileName)
	}
}
