package poloniex

import (
	"context"
	"encoding/json"
	"fmt"

	"poloniex-api/pkg/domain/model"
	"poloniex-api/pkg/infrastructure/jsonmap"

	"github.com/shopspring/decimal"
)

// ReturnBalances 残高取得
func (c *Client) ReturnBalances(ctx context.Context) ([]model.Balance, error) {
	cmd := model.ReturnBalances
	body, err := c.post(ctx, cmd)
	if err != nil {
		return nil, err
	}

	entries, err := jsonmap.Entries(body)
	if err != nil {
		return nil, &MalformedResponseError{Command: cmd.String(), Err: err}
	}

	balances := make([]model.Balance, 0, len(entries))
	for _, e := range entries {
		if isNull(e.Value) {
			return nil, &MalformedResponseError{
				Command: cmd.String(),
				Err:     fmt.Errorf("currency %s; amount is null", e.Key),
			}
		}
		var amount decimal.Decimal
		if err := json.Unmarshal(e.Value, &amount); err != nil {
			return nil, &MalformedResponseError{
				Command: cmd.String(),
				Err:     fmt.Errorf("currency %s; %w", e.Key, err),
			}
		}
		balances = append(balances, model.Balance{
			Currency: e.Key,
			Amount:   amount,
		})
	}
	return balances, nil
}
