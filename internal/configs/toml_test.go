package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nested", "test.toml")

	type TestStruct struct {
		Name  string
		Delay int
	}

	originalData := TestStruct{Name: "laporan.pdf", Delay: 2500}

	if err := SaveTOML(testFile, originalData); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	if _, err := LoadTOML(testFile, &loadedData); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}

	entries, err := os.ReadDir(filepath.Dir(testFile))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the config file to remain, got %d entries", len(entries))
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nonexistent.toml")

	var data struct{ Name string }
	if _, err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestLoadTOMLInvalid(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "invalid.toml")
	if err := os.WriteFile(testFile, []byte("name = [unterminated"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var data struct{ Name string }
	if _, err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for invalid TOML, got nil")
	}
}
