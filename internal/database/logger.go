package database

import (
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// newGormLogger routes gorm's own logging through the package logrus logger
func newGormLogger() gormlogger.Interface {
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
