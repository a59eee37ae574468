package formatter

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func BenchmarkPatternFormatter_Format(b *testing.B) {
	f := NewPatternFormatter(DefaultPattern)
	lg, ev := sampleEvent()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(lg, ev.Level, ev)
	}
}

func BenchmarkPatternFormatter_FormatTo(b *testing.B) {
	f := NewPatternFormatter(DefaultPattern)
	lg, ev := sampleEvent()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormatTo(io.Discard, lg, ev.Level, ev)
	}
}

func BenchmarkJSONFormatter_FormatTo(b *testing.B) {
	f := NewJSONFormatter()
	lg, ev := sampleEvent()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormatTo(io.Discard, lg, ev.Level, ev)
	}
}

// Competitive baseline: a zap console core writing an equivalent line
// to io.Discard.
func BenchmarkZapConsole(b *testing.B) {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	zl := zap.New(zc).Named("root")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zl.Info("hello")
	}
}
