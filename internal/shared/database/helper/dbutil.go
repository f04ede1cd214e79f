package helper

import (
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

func StringToNull(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func NullStringValue(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// =======================
// DECIMAL (Postgres Numeric)
// =======================

// String conversion keeps NUMERIC precision intact.
func Float64ToDecimalExact(f float64) decimal.Decimal {
	return decimal.RequireFromString(
		strconv.FormatFloat(f, 'f', -1, 64),
	)
}

func NumericToFloat64(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
