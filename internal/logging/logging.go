// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps stderr quiet unless something needs attention.
const DefaultLevel = "warn"

// New builds a console logger writing to w. quiet wins over verbose;
// verbose forces debug; otherwise level (e.g. "info") applies.
func New(w io.Writer, level string, verbose, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core).Named("ringrot"), nil
}
