package batch

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelGate_RaisesAndRestores(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	gate := NewLevelGate(level)

	restore := gate.Quiet()
	if got := level.Level(); got != zapcore.WarnLevel {
		t.Errorf("level during quiet = %v, want %v", got, zapcore.WarnLevel)
	}
	restore()
	if got := level.Level(); got != zapcore.DebugLevel {
		t.Errorf("level after restore = %v, want %v", got, zapcore.DebugLevel)
	}
}

func TestLevelGate_NeverLowersThreshold(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	gate := NewLevelGate(level)

	restore := gate.Quiet()
	if got := level.Level(); got != zapcore.ErrorLevel {
		t.Errorf("level during quiet = %v, want %v (already quieter)", got, zapcore.ErrorLevel)
	}
	restore()
	if got := level.Level(); got != zapcore.ErrorLevel {
		t.Errorf("level after restore = %v, want %v", got, zapcore.ErrorLevel)
	}
}
