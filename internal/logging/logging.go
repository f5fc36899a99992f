// Package logging wraps ozzo-log with a file target. Per-sample read
// failures land here rather than in return values; the acquisition loop
// treats them as events, not errors.
package logging

import (
	"github.com/go-ozzo/ozzo-log"
)

type Service struct {
	logger *log.Logger
}

// Open starts a logger writing to the given file. In dev mode debug
// entries are kept, otherwise the target stops at info level.
func Open(dev bool, file string) (*Service, error) {
	l := log.NewLogger()
	target := log.NewFileTarget()
	target.FileName = file
	if dev {
		target.MaxLevel = log.LevelDebug
	} else {
		target.MaxLevel = log.LevelInfo
	}
	l.Targets = append(l.Targets, target)
	if err := l.Open(); err != nil {
		return nil, err
	}
	return &Service{logger: l}, nil
}

// Discard returns a logger with no targets. Tests use it.
func Discard() *Service {
	l := log.NewLogger()
	_ = l.Open()
	return &Service{logger: l}
}

func (s *Service) Close() {
	s.logger.Close()
}

func (s *Service) Info(format string, a ...interface{}) {
	s.logger.Info(format, a...)
}

func (s *Service) Error(format string, a ...interface{}) {
	s.logger.Error(format, a...)
}

func (s *Service) Debug(format string, a ...interface{}) {
	s.logger.Debug(format, a...)
}

func (s *Service) Notice(format string, a ...interface{}) {
	s.logger.Notice(format, a...)
}

// ReadFailed records one failed read attempt. Satisfies the acquisition
// package's failure observer.
func (s *Service) ReadFailed(attempt, max int, err error) {
	s.logger.Error("read failed (attempt %d/%d): %v", attempt, max, err)
}
