package money

import "github.com/shopspring/decimal"

// Monetary figures cross the API and the database as float64, but every
// derivation goes through decimal so all read paths agree. Rounding policy:
// 2 decimal places, half up (all amounts in this system are non-negative).

func FromFloat(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Round2 rounds to 2 decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func Round2Float(f float64) float64 { return Float(Round2(FromFloat(f))) }

// InstallmentsLeft returns ceil(balance / emi), 0 once the balance is cleared.
func InstallmentsLeft(balance, emi decimal.Decimal) int {
	if balance.Sign() <= 0 || emi.Sign() <= 0 {
		return 0
	}
	return int(balance.Div(emi).Ceil().IntPart())
}
