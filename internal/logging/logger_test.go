package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	lg, err := Init("debug", "prod", file)
	if err != nil {
		t.Fatal(err)
	}
	lg.Base.Info("result saved")
	lg.Closer()

	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"msg":"result saved"`) {
		t.Fatalf("log file = %s", b)
	}
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	lg, err := Init("loud", "dev", "")
	if err != nil {
		t.Fatal(err)
	}
	defer lg.Closer()
	if lg.Level.String() != "info" {
		t.Fatalf("level = %s", lg.Level.String())
	}
}
