package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"poloniex-api/pkg/domain"
	"poloniex-api/pkg/domain/exchange"
	"poloniex-api/pkg/domain/model"
	"poloniex-api/pkg/infrastructure/config"
	"poloniex-api/pkg/infrastructure/memory"
	"poloniex-api/pkg/infrastructure/poloniex"
	"poloniex-api/pkg/usecase"

	"golang.org/x/sync/errgroup"
)

func main() {
	f := flag.String("f", "", "config file path (toml)")
	envFile := flag.String("env", "", "env file path (default .env)")
	flag.Parse()

	conf, err := config.Load(*f, *envFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	logger, err := config.NewLogger(&conf.Log)
	if err != nil {
		log.Fatal(err.Error())
	}

	logger.Info("===== START PROGRAM ====================")
	defer logger.Info("===== END PROGRAM ======================")

	if conf.Fetcher.Pair == "" {
		logger.Error("pair is not set; set fetcher.pair or %s_FETCHER_PAIR", config.EnvPrefix)
		return
	}

	logger.Info("pair: %s", conf.Fetcher.Pair)
	logger.Info("interval: %d sec", conf.Fetcher.IntervalSeconds)
	logger.Info("chart: period %s sec, last %d hours", conf.Fetcher.Period, conf.Fetcher.ChartHours)
	logger.Info("======================================")

	exCli, mock, err := makeExchange(conf, logger)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	opts := []usecase.FetcherOption{}
	if mock != nil {
		// モックのローソク足の時刻を現在時刻とみなす
		opts = append(opts, usecase.WithClock(mock.Now))
	}
	fetcher := usecase.NewFetcher(exCli, logger, opts...)
	params := &usecase.FetchParams{
		Pair:      conf.Fetcher.Pair,
		Depth:     conf.Fetcher.Depth,
		Period:    conf.Fetcher.Period,
		ChartSpan: time.Duration(conf.Fetcher.ChartHours) * time.Hour,
	}

	rootCtx, cancel := context.WithCancel(context.Background())
	errGroup, ctx := errgroup.WithContext(rootCtx)

	errGroup.Go(func() error {
		ticker := time.NewTicker(time.Duration(conf.Fetcher.IntervalSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s, err := fetcher.Fetch(ctx, params)
				if err != nil {
					logger.Error("failed to fetch, error: %v", err)
				} else {
					fetcher.Log(s)
				}
				if mock != nil && !mock.NextStep() {
					logger.Info("mock data is exhausted")
					cancel()
					return nil
				}
			case <-ctx.Done():
				return nil
			}
		}
	})
	errGroup.Go(func() error {
		defer cancel()
		return watchSignal(ctx, logger)
	})

	if err := errGroup.Wait(); err != nil {
		logger.Error("error occured, %v", err)
	}
}

// makeExchange mock_dataが指定されていればCSVを再生するモックを使う
func makeExchange(conf *model.Config, logger domain.Logger) (exchange.Client, *memory.ExchangeMock, error) {
	if conf.Fetcher.MockData == "" {
		return poloniex.NewClient(conf.Exchange.Credentials(), conf.Exchange.Endpoint(), logger), nil, nil
	}

	// CSVは全て読み込んでからモックに渡す
	data, err := os.ReadFile(conf.Fetcher.MockData)
	if err != nil {
		return nil, nil, err
	}
	mock, err := memory.NewExchangeMock(conf.Fetcher.Pair, bytes.NewReader(data), nil)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("mock data: %s", conf.Fetcher.MockData)
	return mock, mock, nil
}

func watchSignal(ctx context.Context, logger domain.Logger) error {
	// OSのシグナル監視
	quit := make(chan os.Signal, 1)
	defer signal.Stop(quit)
	signal.Notify(quit, os.Interrupt)
	select {
	case <-quit:
		logger.Info("terminating ...")
	case <-ctx.Done():
	}
	return nil
}
