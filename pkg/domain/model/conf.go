package model

// Config 設定
type Config struct {
	Exchange Exchange `toml:"exchange"`
	Log      Log      `toml:"log"`
	Slack    Slack    `toml:"slack"`
	Fetcher  Fetcher  `toml:"fetcher"`
}

// Exchange 取引所向け設定
type Exchange struct {
	APIKey     string `toml:"api_key" split_words:"true"`
	SecretKey  string `toml:"secret_key" split_words:"true"`
	PublicURL  string `toml:"public_url" split_words:"true"`
	PrivateURL string `toml:"private_url" split_words:"true"`
}

// Credentials 認証情報
func (e *Exchange) Credentials() Credentials {
	return Credentials{APIKey: e.APIKey, SecretKey: e.SecretKey}
}

// Endpoint URL設定
func (e *Exchange) Endpoint() EndpointConfig {
	return EndpointConfig{PublicURL: e.PublicURL, PrivateURL: e.PrivateURL}
}

// Log ログ設定
type Log struct {
	// debug, info, error
	Level string `toml:"level"`
	// text, json
	Format string `toml:"format"`
}

// Slack Slack通知設定
type Slack struct {
	WebhookURL string `toml:"webhook_url" split_words:"true"`
}

// Fetcher 市況取得の設定
type Fetcher struct {
	Pair            string `toml:"pair"`
	IntervalSeconds int    `toml:"interval_seconds" split_words:"true"`
	Depth           string `toml:"depth"`
	// ローソク足の期間（秒）
	Period     string `toml:"period"`
	ChartHours int    `toml:"chart_hours" split_words:"true"`
	// 指定時はCSVのローソク足を使うモックで動かす
	MockData string `toml:"mock_data" split_words:"true"`
}
