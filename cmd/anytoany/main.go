package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/surbot/anytoany/bot"
	"github.com/surbot/anytoany/client"
	"github.com/surbot/anytoany/config"
	"github.com/surbot/anytoany/log"
	"github.com/surbot/anytoany/notifier"
	"github.com/surbot/anytoany/store"
)

func main() {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		logrus.Fatal(err)
	}

	logger := log.New("logs/anytoany.log", logrus.InfoLevel)

	s, err := store.OpenBolt(cfg.DB)
	if err != nil {
		logger.Fatal(err)
	}
	defer s.Close()

	exchange := &client.Client{
		Client:    &http.Client{},
		AccessKey: cfg.Exchange.AccessKey,
		SecretKey: cfg.Exchange.SecretKey,
	}

	var n bot.Notifier
	if cfg.Notifier.SlackWebhook != "" {
		n = notifier.NewSlack(cfg.Notifier.SlackWebhook, cfg.Notifier.Tag, logger)
	}

	b, err := bot.New(cfg, exchange, s, n, logger)
	if err != nil {
		logger.Fatal(err)
	}

	b.Run()
}
