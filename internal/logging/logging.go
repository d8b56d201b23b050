package logging

import (
	log "github.com/sirupsen/logrus"

	"lx-registry-service/internal/config"
)

// Init configures the global logrus logger. Unknown levels fall back to info;
// any format other than "json" uses the text formatter.
func Init(cfg config.LoggerConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
