package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gradient-frame/pkg/export"
)

func TestLoadMissingFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "missing.json"))
	if d := cmp.Diff(Defaults(), got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Defaults(), Load(path)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestLoadBackfillsZeroFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"canvasWidth": 800}`), 0o644); err != nil {
		t.Fatal(err)
	}
	want := Defaults()
	want.CanvasWidth = 800
	if d := cmp.Diff(want, Load(path)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	want := Preferences{CanvasWidth: 1024, CanvasHeight: 768, HandleRadius: 10, ExportScale: 3}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, Load(path)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"GRADIENT_TITLE", "SETTINGS_PATH", "SHARE_ADDR", "EXPORT_DIR", "LOG_LEVEL", "S3_BUCKET", "S3_PREFIX"} {
		t.Setenv(k, "")
	}
	got := FromEnv()
	if got.Title != "Gradient Frame" || got.SettingsPath != "settings.json" || got.ShareAddr != ":8090" ||
		got.ExportDir != "exports" || got.LogLevel != "info" || got.S3Bucket != "" {
		t.Errorf("unexpected defaults: %+v", got)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GRADIENT_TITLE", "Lobby")
	t.Setenv("SHARE_ADDR", "127.0.0.1:9000")
	t.Setenv("S3_BUCKET", "frames")
	t.Setenv("S3_PREFIX", "gradients")
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg := FromEnv()
	if cfg.Title != "Lobby" || cfg.ShareAddr != "127.0.0.1:9000" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	want := export.S3Config{Bucket: "frames", Prefix: "gradients", Region: "eu-west-1", AccessKey: "key", SecretKey: "secret"}
	if d := cmp.Diff(want, cfg.S3()); d != "" {
		t.Errorf("S3 mismatch (-want +got):\n%s", d)
	}
}
