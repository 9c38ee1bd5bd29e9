package upload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	contents := "S3_ACCESS_KEY=test-access\n" +
		"S3_SECRET_KEY=test-secret\n" +
		"S3_ENDPOINT=http://localhost:9000\n" +
		"S3_REGION=us-east-1\n" +
		"S3_BUCKET=renders\n"
	if err := os.WriteFile(envFile, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_ENDPOINT", "S3_REGION", "S3_BUCKET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig(envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bucket != "renders" {
		t.Errorf("expected bucket 'renders', got %q", cfg.Bucket)
	}
	if cfg.AccessKey != "test-access" || cfg.SecretKey != "test-secret" {
		t.Error("credentials not loaded from env file")
	}
	if cfg.Endpoint != "http://localhost:9000" || cfg.Region != "us-east-1" {
		t.Error("endpoint settings not loaded from env file")
	}
}

func TestLoadConfigRequiresBucket(t *testing.T) {
	for _, key := range []string{"S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_ENDPOINT", "S3_REGION", "S3_BUCKET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error when S3_BUCKET is unset")
	}
}

func TestLoadConfigMissingEnvFileIgnored(t *testing.T) {
	t.Setenv("S3_BUCKET", "renders")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("missing env file should not be an error: %v", err)
	}
	if cfg.Bucket != "renders" {
		t.Errorf("expected bucket from environment, got %q", cfg.Bucket)
	}
}

func TestNewUploader(t *testing.T) {
	up, err := NewUploader(&Config{
		AccessKey: "a", SecretKey: "s",
		Endpoint: "http://localhost:9000", Region: "us-east-1",
		Bucket: "renders",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if up.bucket != "renders" {
		t.Errorf("expected bucket 'renders', got %q", up.bucket)
	}
}
