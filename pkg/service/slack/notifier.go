package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
)

// Notifier posts case events to a Slack channel. Notifications are
// best-effort: callers log failures and move on.
type Notifier struct {
	api     *slack.Client
	channel string
}

var _ interfaces.Notifier = &Notifier{}

// New creates a new Slack notifier with the provided bot token
func New(token, channel string) (*Notifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	return &Notifier{
		api:     slack.New(token),
		channel: channel,
	}, nil
}

// NotifySubmission announces a newly submitted report. Only non-sensitive
// fields are posted: no content, no reporter contact data.
func (n *Notifier) NotifySubmission(ctx context.Context, report *model.Report) error {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "New report submitted", false, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Tracking Code:*\n%s", report.TrackingCode), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Category:*\n%s", report.Category), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Severity:*\n%s", report.Severity), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Type:*\n%s", report.SubmissionType), false, false),
		}, nil),
	}

	if _, _, err := n.api.PostMessageContext(ctx, n.channel, slack.MsgOptionBlocks(blocks...)); err != nil {
		return goerr.Wrap(err, "failed to post submission notification",
			goerr.V("channel", n.channel),
			goerr.V("tracking_code", report.TrackingCode),
		)
	}
	return nil
}

// NotifyClosed announces that a case has been closed
func (n *Notifier) NotifyClosed(ctx context.Context, report *model.Report, closedBy string) error {
	text := fmt.Sprintf("Case %s has been closed and marked as Resolved by %s.", report.TrackingCode, closedBy)

	if _, _, err := n.api.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false)); err != nil {
		return goerr.Wrap(err, "failed to post close notification",
			goerr.V("channel", n.channel),
			goerr.V("tracking_code", report.TrackingCode),
		)
	}
	return nil
}
