package dice

import "go.uber.org/zap"

// LoggedSource wraps a Source and logs every draw at debug level so that a
// battle's randomness can be audited after the fact.
type LoggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedSource creates a LoggedSource that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedSource(src Source, logger *zap.Logger) *LoggedSource {
	return &LoggedSource{src: src, logger: logger}
}

// Intn draws from the wrapped source and logs the result.
func (l *LoggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("dice draw",
		zap.String("kind", "intn"),
		zap.Int("n", n),
		zap.Int("result", v),
	)
	return v
}

// IntRange draws from the wrapped source and logs the result.
func (l *LoggedSource) IntRange(min, max int) int {
	v := l.src.IntRange(min, max)
	l.logger.Debug("dice draw",
		zap.String("kind", "range"),
		zap.Int("min", min),
		zap.Int("max", max),
		zap.Int("result", v),
	)
	return v
}

// Uint8 draws from the wrapped source and logs the result.
func (l *LoggedSource) Uint8() uint8 {
	v := l.src.Uint8()
	l.logger.Debug("dice draw", zap.String("kind", "uint8"), zap.Uint8("result", v))
	return v
}

// Uint16 draws from the wrapped source and logs the result.
func (l *LoggedSource) Uint16() uint16 {
	v := l.src.Uint16()
	l.logger.Debug("dice draw", zap.String("kind", "uint16"), zap.Uint16("result", v))
	return v
}
