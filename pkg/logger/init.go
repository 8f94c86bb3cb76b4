package logger

// Init initializes the global logger with default settings
func Init() {
	SetLogLevel(INFO)
}

// InitWithLevel initializes the global logger with a specific level
func InitWithLevel(level LogLevel) {
	SetLogLevel(level)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return currentLevel <= DEBUG
}
