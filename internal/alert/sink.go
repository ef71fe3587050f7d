package alert

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink persists alert records.
type Sink interface {
	Write(rec Record) error
	Close() error
}

// FileSink appends records to a log file, one line per record, formatted as
// "<ISO-8601 timestamp> - <message>". The file is opened O_APPEND so each
// record lands in a single atomic write; partial lines are never observable.
type FileSink struct {
	file   *os.File
	logger *zap.Logger
}

// NewFileSink opens (or creates) the log at path for appending.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open alert log: %w", err)
	}

	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		MessageKey:       "msg",
		LevelKey:         zapcore.OmitKey,
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		ConsoleSeparator: " - ",
	})
	core := zapcore.NewCore(enc, zapcore.Lock(f), zapcore.WarnLevel)
	return &FileSink{file: f, logger: zap.New(core)}, nil
}

// Write appends rec at WARNING severity. The logged timestamp is the
// record's sample time, not the time of the write.
func (s *FileSink) Write(rec Record) error {
	ce := s.logger.Check(zapcore.WarnLevel, rec.Message)
	if ce == nil {
		return nil
	}
	ce.Time = rec.Time
	ce.Write()
	return nil
}

func (s *FileSink) Close() error {
	_ = s.logger.Sync()
	return s.file.Close()
}
