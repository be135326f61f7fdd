package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for Slack notification configuration
type Slack struct {
	botToken string
	channel  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot OAuth token for submission notifications",
			Sources:     cli.EnvVars("INTAKEBOX_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for submission notifications",
			Sources:     cli.EnvVars("INTAKEBOX_SLACK_CHANNEL"),
			Destination: &s.channel,
		},
	}
}

// IsConfigured returns true when both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channel != ""
}

// Configure creates the Slack notifier. Returns nil if not configured.
func (s *Slack) Configure() (interfaces.Notifier, error) {
	if s.botToken == "" && s.channel == "" {
		return nil, nil
	}
	if !s.IsConfigured() {
		return nil, goerr.New("slack-bot-token and slack-channel must be set together")
	}

	notifier, err := slack.New(s.botToken, s.channel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create slack notifier")
	}
	return notifier, nil
}
