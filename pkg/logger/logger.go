package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер, пишущий в stdout
func New(logLevel, format string) *logrus.Logger {
	return NewWithOutput(os.Stdout, logLevel, format)
}

// NewWithOutput создает логгер с заданным выводом. format "text" включает
// текстовый формат, все остальное - JSON.
func NewWithOutput(out io.Writer, logLevel, format string) *logrus.Logger {
	log := logrus.New()

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
