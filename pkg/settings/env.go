package settings

import (
	"os"

	"gradient-frame/pkg/export"
	"gradient-frame/pkg/share"
)

// Config is the process configuration read from the environment. main loads
// .env with godotenv before calling FromEnv.
type Config struct {
	Title        string
	SettingsPath string
	ShareAddr    string
	ExportDir    string
	LogLevel     string

	S3Bucket     string
	S3Prefix     string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FromEnv reads Config, filling in defaults for unset variables.
func FromEnv() Config {
	return Config{
		Title:        getenv("GRADIENT_TITLE", "Gradient Frame"),
		SettingsPath: getenv("SETTINGS_PATH", "settings.json"),
		ShareAddr:    getenv("SHARE_ADDR", share.DefaultAddr),
		ExportDir:    getenv("EXPORT_DIR", "exports"),
		LogLevel:     getenv("LOG_LEVEL", "info"),

		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Prefix:     os.Getenv("S3_PREFIX"),
		AWSRegion:    os.Getenv("AWS_DEFAULT_REGION"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// S3 returns the upload configuration.
func (c Config) S3() export.S3Config {
	return export.S3Config{
		Bucket:    c.S3Bucket,
		Prefix:    c.S3Prefix,
		Region:    c.AWSRegion,
		AccessKey: c.AWSAccessKey,
		SecretKey: c.AWSSecretKey,
	}
}
