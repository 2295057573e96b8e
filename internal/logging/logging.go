package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the application logger. Development mode switches to the
// human-readable console encoder.
func New(appEnv string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(appEnv), "development") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
