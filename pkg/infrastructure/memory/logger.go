package memory

import (
	"fmt"
	"log"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	Debug = iota
	Info
	Error
)

type Logger struct {
	Level int
}

// ParseLevel debug, info, error をレベルに変換
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "", "info":
		return Info, nil
	case "error":
		return Error, nil
	}
	return 0, fmt.Errorf("unknown log level: %s", s)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.Level > Debug {
		return
	}
	log.Printf("[DEBUG] "+format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	if l.Level > Info {
		return
	}
	log.Printf("[INFO] "+format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	if l.Level > Error {
		return
	}
	level := aurora.Red("[ERROR] ").String()

	log.Printf(level+format, v...)
}
