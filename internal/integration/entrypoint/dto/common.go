package dto

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// roundPercent rounds a ratio to two decimal places for the wire.
func roundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
