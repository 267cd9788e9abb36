package restart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/viper"
)

const (
	MethodSupervisor  = "supervisor"
	MethodLaunchctl   = "launchctl"
	MethodSystemd     = "systemd"
	MethodUnsupported = "unsupported"

	commandKey      = "restart.command"
	launchdLabelKey = "restart.launchd_label"
	systemdUnitKey  = "restart.systemd_unit"

	defaultLaunchdLabel = "com.chatgate.gateway"
	defaultSystemdUnit  = "chatgate-gateway.service"
)

var ErrUnavailable = errors.New("restart command unavailable")

type runFunc func(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)

// SupervisorRestarter asks the service manager to restart the gateway. An
// explicit restart.command wins; otherwise launchd on macOS and the systemd
// user manager on Linux.
type SupervisorRestarter struct {
	command      string
	launchdLabel string
	systemdUnit  string
	goos         string
	uid          int
	run          runFunc
}

var _ ports.SupervisorRestarter = (*SupervisorRestarter)(nil)

func NewSupervisorRestarter(cfg *viper.Viper) *SupervisorRestarter {
	if cfg == nil {
		cfg = viper.New()
	}
	cfg.SetDefault(launchdLabelKey, defaultLaunchdLabel)
	cfg.SetDefault(systemdUnitKey, defaultSystemdUnit)

	return &SupervisorRestarter{
		command:      strings.TrimSpace(cfg.GetString(commandKey)),
		launchdLabel: cfg.GetString(launchdLabelKey),
		systemdUnit:  cfg.GetString(systemdUnitKey),
		goos:         runtime.GOOS,
		uid:          os.Getuid(),
		run:          runCommand,
	}
}

func (s *SupervisorRestarter) Restart(ctx context.Context) domain.RestartMethod {
	if err := ctx.Err(); err != nil {
		return domain.RestartMethod{Method: s.method(), Detail: err.Error()}
	}

	switch method := s.method(); method {
	case MethodSupervisor:
		words, err := shellquote.Split(s.command)
		if err != nil || len(words) == 0 {
			return domain.RestartMethod{Method: method, Detail: fmt.Sprintf("invalid %s: %q", commandKey, s.command)}
		}
		return s.runRestart(ctx, method, strings.Join(words, " "), words[0], words[1:]...)
	case MethodLaunchctl:
		target := fmt.Sprintf("gui/%d/%s", s.uid, s.launchdLabel)
		return s.runRestart(ctx, method, target, "launchctl", "kickstart", "-k", target)
	case MethodSystemd:
		return s.runRestart(ctx, method, s.systemdUnit, "systemctl", "--user", "restart", s.systemdUnit)
	default:
		return domain.RestartMethod{Method: MethodUnsupported, Detail: fmt.Sprintf("no supervisor known for %s", s.goos)}
	}
}

func (s *SupervisorRestarter) method() string {
	switch {
	case s.command != "":
		return MethodSupervisor
	case s.goos == "darwin":
		return MethodLaunchctl
	case s.goos == "linux":
		return MethodSystemd
	default:
		return MethodUnsupported
	}
}

func (s *SupervisorRestarter) runRestart(ctx context.Context, method, target, name string, args ...string) domain.RestartMethod {
	_, stderr, err := s.run(ctx, name, args...)
	if err != nil {
		detail := err.Error()
		if stderr != "" {
			detail = stderr
		}
		return domain.RestartMethod{Method: method, Detail: detail}
	}
	return domain.RestartMethod{OK: true, Method: method, Detail: target}
}

func runCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s", ErrUnavailable, name)
		}
		return "", "", fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
