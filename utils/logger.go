package utils

import (
	"io"
	"log"
)

// Logger writes prefixed diagnostics. Frames go to stdout, so the logger is
// normally pointed at stderr.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "[GOL-INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(w, "[GOL-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(w, "[GOL-ERROR] ", log.Ldate|log.Ltime),
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}
