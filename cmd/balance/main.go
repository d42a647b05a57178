package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"poloniex-api/pkg/domain"
	"poloniex-api/pkg/infrastructure/config"
	"poloniex-api/pkg/infrastructure/poloniex"
	"poloniex-api/pkg/infrastructure/slack"
	"poloniex-api/pkg/usecase"
)

func main() {
	f := flag.String("f", "", "config file path (toml)")
	envFile := flag.String("env", "", "env file path (default .env)")
	nonZero := flag.Bool("nonzero", false, "hide currencies with zero balance")
	flag.Parse()

	conf, err := config.Load(*f, *envFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := config.ValidateCredentials(conf); err != nil {
		log.Fatal(err.Error())
	}
	logger, err := config.NewLogger(&conf.Log)
	if err != nil {
		log.Fatal(err.Error())
	}

	cli := poloniex.NewClient(conf.Exchange.Credentials(), conf.Exchange.Endpoint(), logger)

	var notifier domain.Notifier
	if conf.Slack.WebhookURL != "" {
		notifier = slack.NewClient(conf.Slack.WebhookURL)
	}
	reporter := usecase.NewBalanceReporter(cli, notifier, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	balances, err := reporter.Report(ctx, *nonZero)
	if err != nil {
		logger.Error("error occured, %v", err)
		if balances == nil {
			os.Exit(1)
		}
	}
	fmt.Println(usecase.FormatBalances(balances))
}
