package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long a reconciliation entry point took, at debug
// level. Used with defer at the top of each service operation:
//
//	defer TrackTime("PortfolioPositions", time.Now())
func TrackTime(operation string, start time.Time) {
	log.WithFields(log.Fields{
		"operation":   operation,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("operation completed")
}
