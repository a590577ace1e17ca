package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnv переменная окружения, которой можно переопределить уровень логирования.
const LevelEnv = "LOG_LEVEL"

// New инициализирует логгер. В release режиме gin пишет json с уровнем info, в остальных режимах текст
// с уровнем debug. LevelEnv, если задан и распознан, имеет приоритет.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if level, err := logrus.ParseLevel(os.Getenv(LevelEnv)); err == nil {
		l.SetLevel(level)
	}

	return l
}

// Component возвращает запись лога с полем component.
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
