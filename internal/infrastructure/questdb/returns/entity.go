package returns

const (
	equidistantTable = "equidistant_returns"
	dailyTable       = "daily_returns"

	// insertBatchSize bounds the rows of one INSERT statement.
	insertBatchSize = 1000
)

var (
	equidistantColumns = []string{"ts", "symbol", "resampling_interval", "trading_date", "log_return", "run_id"}
	dailyColumns       = []string{"ts", "symbol", "log_return", "run_id"}
)
