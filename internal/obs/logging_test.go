package obs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLoggerUsableBeforeInit(t *testing.T) {
	Logger.Info("before_init")
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	if err := InitLogger("loud", "stderr"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestInitLoggerWritesJSONToFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	path := filepath.Join(t.TempDir(), "showcase.log")
	if err := InitLogger("warn", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	Logger.Info("dropped_below_level")
	Logger.Warn("kept", zap.Int("cards", 8))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped_below_level") {
		t.Fatalf("info entry should be filtered at warn")
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"cards":8`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}
