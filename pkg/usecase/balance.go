package usecase

import (
	"context"
	"fmt"
	"strings"

	"poloniex-api/pkg/domain"
	"poloniex-api/pkg/domain/exchange"
	"poloniex-api/pkg/domain/model"
)

// BalanceReporter 残高通知
type BalanceReporter struct {
	exCli    exchange.Client
	notifier domain.Notifier
	logger   domain.Logger
}

// NewBalanceReporter 生成。notifierはnilでもよい
func NewBalanceReporter(exCli exchange.Client, notifier domain.Notifier, logger domain.Logger) *BalanceReporter {
	return &BalanceReporter{
		exCli:    exCli,
		notifier: notifier,
		logger:   logger,
	}
}

// Report 残高を取得して通知する
func (r *BalanceReporter) Report(ctx context.Context, hideZero bool) ([]model.Balance, error) {
	bb, err := r.exCli.ReturnBalances(ctx)
	if err != nil {
		return nil, err
	}

	balances := []model.Balance{}
	for _, b := range bb {
		if hideZero && b.Amount.IsZero() {
			continue
		}
		balances = append(balances, b)
	}
	r.logger.Debug("balances: %d currencies, %d reported", len(bb), len(balances))

	if r.notifier == nil || len(balances) == 0 {
		return balances, nil
	}
	if err := r.notifier.Notify(ctx, FormatBalances(balances)); err != nil {
		return balances, fmt.Errorf("failed to notify balances; error: %w", err)
	}
	return balances, nil
}

// FormatBalances 1行1通貨の文字列にする
func FormatBalances(bb []model.Balance) string {
	lines := make([]string, 0, len(bb))
	for _, b := range bb {
		lines = append(lines, fmt.Sprintf("%s: %s", b.Currency, b.Amount.String()))
	}
	return strings.Join(lines, "\n")
}
