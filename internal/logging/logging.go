// Package logging builds the zap logger shared by the services and CLI.
package logging

import "go.uber.org/zap"

// New returns a production-encoded logger on stderr. debug lowers the level
// to Debug and switches to the development encoder.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
