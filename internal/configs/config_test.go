package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"
)

func withTempSettings(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	original := UserCloudSafeSettings
	UserCloudSafeSettings = &UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		DownloadsPath:   filepath.Join(tempDir, "downloads"),
	}
	t.Cleanup(func() {
		UserCloudSafeSettings = original
	})
	return tempDir
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	withTempSettings(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	d := cfg.Simulation.Delays()
	if d.Upload != 2*time.Second || d.Encrypt != 2500*time.Millisecond || d.Decrypt != 2500*time.Millisecond {
		t.Errorf("Unexpected default delays: %+v", d)
	}
	if cfg.Simulation.FallbackName != "decrypted-file" {
		t.Errorf("Expected fallback name decrypted-file, got %q", cfg.Simulation.FallbackName)
	}
	if got := cfg.Simulation.DownloadDir(); got != UserCloudSafeSettings.DownloadsPath {
		t.Errorf("Expected download dir %q, got %q", UserCloudSafeSettings.DownloadsPath, got)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tempDir := withTempSettings(t)

	cfg := DefaultConfig()
	cfg.Presentation.Theme = "light"
	cfg.Simulation.UploadDelayMS = 10
	cfg.Simulation.OutputDir = filepath.Join(tempDir, "out")

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
	if loaded.Simulation.DownloadDir() != cfg.Simulation.OutputDir {
		t.Errorf("Expected output_dir to win, got %q", loaded.Simulation.DownloadDir())
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	withTempSettings(t)
	writeConfig(t, "[simulation]\nupload_delay_ms = 0\n")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Simulation.UploadDelayMS != 0 {
		t.Errorf("Expected upload delay 0, got %d", cfg.Simulation.UploadDelayMS)
	}
	if cfg.Simulation.EncryptDelayMS != 2500 {
		t.Errorf("Expected default encrypt delay, got %d", cfg.Simulation.EncryptDelayMS)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"negative delay", "[simulation]\ndecrypt_delay_ms = -1\n", kerrors.ErrInvalidConfig},
		{"unknown theme", "[presentation]\ntheme = \"sepia\"\n", kerrors.ErrInvalidTheme},
		{"unknown key", "[simulation]\nturbo = true\n", kerrors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTempSettings(t)
			writeConfig(t, tt.content)

			_, err := LoadConfig()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll(UserCloudSafeSettings.UserConfigsPath, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigPath(), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}
