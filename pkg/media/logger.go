package media

import (
	"fmt"
	"strings"

	"homeinsight-listings/pkg/logger"
)

// leveledLogger routes retryablehttp's logging into the global logger.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Errorf("media client: %s%s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Printf("media client: %s%s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Debugf("media client: %s%s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Debugf("media client: %s%s", msg, formatKV(keysAndValues))
}

func formatKV(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
