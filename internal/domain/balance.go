package domain

import "github.com/shopspring/decimal"

// BalanceType is the display bucket a leave request draws from.
type BalanceType string

const (
	BalanceAnnual   BalanceType = "Annual Leave"
	BalanceSick     BalanceType = "Sick Leave"
	BalanceParental BalanceType = "Parental Leave"
	BalanceOther    BalanceType = "Other Leave"
)

// BalanceTypes lists every bucket in display order.
var BalanceTypes = []BalanceType{BalanceAnnual, BalanceSick, BalanceParental, BalanceOther}

var balanceTypeByCode = map[string]BalanceType{
	"PAID_LEAVE":        BalanceAnnual,
	"PAID_SICK_LEAVE":   BalanceSick,
	"UNPAID_SICK_LEAVE": BalanceSick,
	"PARENTAL_LEAVE":    BalanceParental,
	"UNPAID_LEAVE":      BalanceOther,
	"OTHER_LEAVE":       BalanceOther,
}

// BalanceTypeFor maps a request type code to its balance bucket.
// Codes without a bucket are not checked against any entitlement.
func BalanceTypeFor(code string) (BalanceType, bool) {
	bt, ok := balanceTypeByCode[code]
	return bt, ok
}

// CodesFor returns the request type codes drawing from bt.
func CodesFor(bt BalanceType) []string {
	codes := make([]string, 0, 2)
	for code, t := range balanceTypeByCode {
		if t == bt {
			codes = append(codes, code)
		}
	}
	return codes
}

func (b BalanceType) Valid() bool {
	for _, t := range BalanceTypes {
		if t == b {
			return true
		}
	}
	return false
}

// DefaultEntitlement is the yearly total used when a balance row is first materialized.
func DefaultEntitlement(bt BalanceType) decimal.Decimal {
	switch bt {
	case BalanceAnnual:
		return decimal.NewFromInt(15)
	case BalanceSick:
		return decimal.NewFromInt(10)
	case BalanceParental:
		return decimal.NewFromInt(14)
	case BalanceOther:
		return decimal.NewFromInt(5)
	default:
		return decimal.Zero
	}
}
