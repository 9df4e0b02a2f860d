package log

import "go.uber.org/zap"

const (
	ModeDevelopment = "debug"
	ModeProduction  = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig holds logger configuration.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}
