// Package notifier delivers bot events to humans.
package notifier

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// Slack posts messages to an incoming webhook, prefixed with a timestamp and
// a tag identifying the bot instance. Delivery failures are logged and
// swallowed; a dead webhook must not stall the state machine.
type Slack struct {
	webhookURL string
	tag        string
	log        *logrus.Logger
}

func NewSlack(webhookURL, tag string, logger *logrus.Logger) *Slack {
	if logger == nil {
		logger = logrus.New()
	}

	return &Slack{webhookURL: webhookURL, tag: tag, log: logger}
}

func (s *Slack) Notify(message string) {
	stamp := time.Now().Format("2006-01-02 15:04:05 -0700")

	err := slack.PostWebhook(s.webhookURL, &slack.WebhookMessage{
		Text: fmt.Sprintf("[%s %s] %s", stamp, s.tag, message),
	})
	if err != nil {
		s.log.WithError(err).Warn("slack notification failed")
	}
}
