package worker

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Logger adapts zerolog to the asynq.Logger interface.
type Logger struct{}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(args ...interface{}) {
	log.Debug().Msg(fmt.Sprint(args...))
}

func (l *Logger) Info(args ...interface{}) {
	log.Info().Msg(fmt.Sprint(args...))
}

func (l *Logger) Warn(args ...interface{}) {
	log.Warn().Msg(fmt.Sprint(args...))
}

func (l *Logger) Error(args ...interface{}) {
	log.Error().Msg(fmt.Sprint(args...))
}

func (l *Logger) Fatal(args ...interface{}) {
	log.Fatal().Msg(fmt.Sprint(args...))
}
