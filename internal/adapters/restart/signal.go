package restart

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
	"golang.org/x/sys/unix"
)

const defaultSignalDelay = 750 * time.Millisecond

var (
	ErrNoListener       = errors.New("no SIGUSR1 listener registered")
	ErrAlreadyListening = errors.New("SIGUSR1 listener already registered")
)

// SignalRestarter restarts the gateway in-process: Schedule sends SIGUSR1 to
// the current process and the registered listener performs the restart.
type SignalRestarter struct {
	mu        sync.Mutex
	listening bool
	reason    string

	signals chan os.Signal
	delay   time.Duration
	pid     func() int
	kill    func(pid int, sig syscall.Signal) error
	logger  *slog.Logger
}

var _ ports.SignalRestarter = (*SignalRestarter)(nil)

func NewSignalRestarter(logger *slog.Logger) *SignalRestarter {
	return &SignalRestarter{
		signals: make(chan os.Signal, 1),
		delay:   defaultSignalDelay,
		pid:     unix.Getpid,
		kill:    unix.Kill,
		logger:  logging.OrDefault(logger),
	}
}

// Listen subscribes fn to SIGUSR1 until ctx is done. fn receives the reason
// passed to Schedule, or "signal" for a SIGUSR1 sent from outside.
func (s *SignalRestarter) Listen(ctx context.Context, fn func(reason string)) error {
	s.mu.Lock()
	if s.listening {
		s.mu.Unlock()
		return ErrAlreadyListening
	}
	s.listening = true
	s.mu.Unlock()

	signal.Notify(s.signals, unix.SIGUSR1)

	go func() {
		defer func() {
			signal.Stop(s.signals)
			s.mu.Lock()
			s.listening = false
			s.mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.signals:
				reason := s.takeReason()
				s.logger.Info("restart signal received", slog.String("reason", reason))
				fn(reason)
			}
		}
	}()

	return nil
}

func (s *SignalRestarter) HasListener() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listening
}

// Schedule sends SIGUSR1 after a short delay so the reply announcing the
// restart can go out first.
func (s *SignalRestarter) Schedule(reason string) error {
	s.mu.Lock()
	if !s.listening {
		s.mu.Unlock()
		return ErrNoListener
	}
	s.reason = reason
	s.mu.Unlock()

	time.AfterFunc(s.delay, func() {
		if err := s.kill(s.pid(), unix.SIGUSR1); err != nil {
			s.logger.Error("send restart signal", slog.String("reason", reason), slog.Any("error", err))
		}
	})
	return nil
}

func (s *SignalRestarter) takeReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	reason := s.reason
	s.reason = ""
	if reason == "" {
		return "signal"
	}
	return reason
}
