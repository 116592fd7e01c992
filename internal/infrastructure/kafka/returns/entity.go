package returns

import (
	"encoding/json"
	"math"
	"time"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// DayMessage is the JSON payload published for one trading day.
type DayMessage struct {
	Symbol   string         `json:"symbol"`
	Interval string         `json:"interval"`
	Date     string         `json:"date"`
	RunID    string         `json:"run_id,omitempty"`
	Points   []PointMessage `json:"points"`
}

// PointMessage is one return. LogReturn is null for missing values.
type PointMessage struct {
	Timestamp time.Time `json:"ts"`
	LogReturn *float64  `json:"log_return"`
}

// NewDayMessage converts a day series to its wire representation.
func NewDayMessage(series *v1.DaySeries, runID string) DayMessage {
	msg := DayMessage{
		Symbol:   series.Symbol,
		Interval: series.Interval,
		Date:     series.Date.Format(util.DateLayout),
		RunID:    runID,
		Points:   make([]PointMessage, 0, series.Len()),
	}

	for _, p := range series.Points {
		point := PointMessage{Timestamp: p.Timestamp.UTC()}
		if !math.IsNaN(p.LogReturn) && !math.IsInf(p.LogReturn, 0) {
			value := p.LogReturn
			point.LogReturn = &value
		}
		msg.Points = append(msg.Points, point)
	}

	return msg
}

// Key returns the partitioning key "<symbol>:<date>".
func (m DayMessage) Key() []byte {
	return []byte(m.Symbol + ":" + m.Date)
}

// ToBytes encodes the message as JSON.
func (m DayMessage) ToBytes() ([]byte, error) {
	return json.Marshal(m)
}
