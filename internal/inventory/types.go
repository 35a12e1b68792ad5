package inventory

import "time"

// Record is one row of the inventory CSV.
type Record struct {
	Key              string
	KeyName          string
	CurrentMonth     int
	BeginInventory   float64
	LastInventory    float64
	StatusDate       time.Time
	CurrentInventory float64
	Sales            float64
}

// Table holds the parsed records in file order.
type Table struct {
	Records []Record
}

// TimePoint is one entry of a per-key time series, chart-ready.
type TimePoint struct {
	StatusDate       string  `json:"status_date"`
	CurrentInventory float64 `json:"current_status_inventory"`
	Sales            float64 `json:"sales"`
}

// Summary is the KPI set computed for one inventory key.
type Summary struct {
	Key           string      `json:"key"`
	KeyName       string      `json:"key_name"`
	CurrentMonth  int         `json:"current_month"`
	TotalSales    float64     `json:"total_sales"`
	AvgDailySales float64     `json:"avg_daily_sales"`
	MinInventory  float64     `json:"min_inventory"`
	MaxInventory  float64     `json:"max_inventory"`
	DaysBelow100  int         `json:"days_below_100"`
	TimeSeries    []TimePoint `json:"time_series"`
}
