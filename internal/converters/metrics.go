package converters

import (
	"time"

	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// NoOpMetrics returns a metrics recorder that drops every observation.
func NoOpMetrics() interfaces.ConversionMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveConvertDuration(string, time.Duration) {}

func (noopMetrics) IncrementUnsupported(string) {}

func (noopMetrics) IncrementTruncated(string) {}
