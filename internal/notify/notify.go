// Package notify は画面のtoast（通知）に渡すメッセージを扱う。
// 送りっぱなし（fire-and-forget）で、送信側は結果を待たない。
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// 1件の通知
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// 通知の送り先
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

func Success(ctx context.Context, n Notifier, message string) { n.Notify(ctx, LevelSuccess, message) }
func Error(ctx context.Context, n Notifier, message string)   { n.Notify(ctx, LevelError, message) }
func Info(ctx context.Context, n Notifier, message string)    { n.Notify(ctx, LevelInfo, message) }

// 既定の保持件数
const DefaultCapacity = 50

// Recorder は未読の通知をためておき、UIがDrainで受け取る。
// 上限を超えたら古いものから捨てる。
type Recorder struct {
	mu       sync.Mutex
	capacity int
	items    []Notification
}

func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{capacity: capacity}
}

func (r *Recorder) Notify(ctx context.Context, level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if over := len(r.items) - r.capacity; over > 0 {
		r.items = append([]Notification(nil), r.items[over:]...)
	}
}

// 未読を古い順に返して空にする
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.items
	r.items = nil
	if out == nil {
		return []Notification{}
	}
	return out
}

// 未読を見るだけ（消さない）
func (r *Recorder) Pending() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// LogNotifier は通知をslogに書く
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, level Level, message string) {
	lv := slog.LevelInfo
	if level == LevelError || level == LevelWarning {
		lv = slog.LevelWarn
	}
	l.logger.Log(ctx, lv, "notification", "level", string(level), "message", message)
}

// Multi は複数の送り先に配る
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, level Level, message string) {
	for _, n := range m {
		n.Notify(ctx, level, message)
	}
}

// Discard は何もしない
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(context.Context, Level, string) {}
