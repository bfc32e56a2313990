package ports

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

type LoggerPort interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// Domain events passed to MetricsPort.RecordEvent.
const (
	EventBikeRegistered = "bike_registered"
	EventImagesAttached = "images_attached"
	EventReportFiled    = "report_filed"
	EventReportResolved = "report_resolved"
	EventBadgeAwarded   = "badge_awarded"
	EventSearch         = "search"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordEvent(event string)
}

// ImageFile is an uploaded image waiting to be stored.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

type ImageStoragePort interface {
	Upload(ctx context.Context, file ImageFile, folder string) (string, error)
}
