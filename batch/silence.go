package batch

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Silencer temporarily raises a logging threshold. Quiet returns the restore
// function; callers must run it on every exit path.
type Silencer interface {
	Quiet() (restore func())
}

// LevelGate silences a zap.AtomicLevel to Warn for the duration of a batch
// run. It never lowers a threshold that is already quieter, and restore
// resets the exact prior level.
type LevelGate struct {
	Level zap.AtomicLevel
}

// NewLevelGate wraps an AtomicLevel shared with the caller's logger.
func NewLevelGate(level zap.AtomicLevel) *LevelGate {
	return &LevelGate{Level: level}
}

func (g *LevelGate) Quiet() func() {
	prev := g.Level.Level()
	if prev < zapcore.WarnLevel {
		g.Level.SetLevel(zapcore.WarnLevel)
	}
	return func() { g.Level.SetLevel(prev) }
}
