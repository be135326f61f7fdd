package config

import (
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/usecase"
	"github.com/intakebox/intakebox/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Auth holds CLI flags for session verification
type Auth struct {
	sessionSecret string
}

// Flags returns CLI flags for auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "HMAC secret shared with the auth proxy for session tokens",
			Sources:     cli.EnvVars("INTAKEBOX_SESSION_SECRET"),
			Destination: &a.sessionSecret,
		},
	}
}

// Configure creates the session verifier. Returns nil without a secret;
// the dashboard API is then unreachable and only the public intake
// surface is served.
func (a *Auth) Configure(repo interfaces.Repository) (*usecase.AuthUseCase, error) {
	if a.sessionSecret == "" {
		logging.Default().Warn("session secret not configured, dashboard API is disabled")
		return nil, nil
	}
	return usecase.NewAuthUseCase(repo, []byte(a.sessionSecret)), nil
}
