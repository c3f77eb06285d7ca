package telemetry

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"
)

// Logger returns a structured logger writing to stderr through the standard
// log package. Messages above verbosity are dropped.
func Logger(verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName(serviceName)
}

// SetLogger routes OpenTelemetry's internal errors to logger.
func SetLogger(logger logr.Logger) {
	otel.SetLogger(logger.WithName("otel"))
}
