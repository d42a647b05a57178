package domain

import "context"

// Logger ロガー
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier 通知先
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
