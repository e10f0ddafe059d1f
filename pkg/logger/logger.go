package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

// Init builds the process-wide logger. Production environments get JSON
// output at info level, everything else gets the console encoder at debug.
func Init(env string) {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewExample()
	}

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

func Sync() {
	_ = current().Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(msg string, keysAndValues ...interface{}) {
	current().Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...interface{}) {
	current().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	current().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...interface{}) {
	current().Errorw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	current().Fatalw(msg, normalize(keysAndValues)...)
}

// normalize lets callers pass a bare error (logger.Error("msg", err)); a
// dangling value is keyed as "error" instead of being dropped by zap.
func normalize(kv []interface{}) []interface{} {
	if len(kv)%2 == 0 {
		return kv
	}
	if len(kv) == 1 {
		return []interface{}{"error", kv[0]}
	}
	out := make([]interface{}, 0, len(kv)+1)
	out = append(out, kv[:len(kv)-1]...)
	return append(out, "error", kv[len(kv)-1])
}
