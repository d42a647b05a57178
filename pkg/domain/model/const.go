package model

// PublicCommand 公開APIのコマンド
type PublicCommand string

const (
	// ReturnTicker ティッカー
	ReturnTicker PublicCommand = "returnTicker"
	// ReturnOrderBook 板情報
	ReturnOrderBook PublicCommand = "returnOrderBook"
	// ReturnChartData ローソク足
	ReturnChartData PublicCommand = "returnChartData"
)

// Valid 定義済みのコマンドか
func (c PublicCommand) Valid() bool {
	switch c {
	case ReturnTicker, ReturnOrderBook, ReturnChartData:
		return true
	}
	return false
}

func (c PublicCommand) String() string {
	return string(c)
}

// PrivateCommand 認証APIのコマンド
type PrivateCommand string

const (
	// ReturnBalances 残高
	ReturnBalances PrivateCommand = "returnBalances"
)

// Valid 定義済みのコマンドか
func (c PrivateCommand) Valid() bool {
	switch c {
	case ReturnBalances:
		return true
	}
	return false
}

func (c PrivateCommand) String() string {
	return string(c)
}

const (
	// DefaultDepth 板情報の取得件数（未指定時）
	DefaultDepth = "50"

	// DefaultPublicURL 公開APIのURL
	DefaultPublicURL = "https://poloniex.com/public"
	// DefaultPrivateURL 認証APIのURL
	DefaultPrivateURL = "https://poloniex.com/tradingApi"
)
