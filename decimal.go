package pgqb

import "github.com/shopspring/decimal"

// ConstDecimal builds a numeric constant from an exact decimal value,
// rendering it at its own scale (trailing fractional zeros kept, so
// 19.990 stays 19.990) rather than round-tripping through float64 the
// way ConstLit[float64] would — avoiding the precision loss float64
// introduces for money-like values.
func ConstDecimal(v decimal.Decimal, typ SQLType) Expression[decimal.Decimal] {
	text := v.String()
	if exp := v.Exponent(); exp < 0 {
		text = v.StringFixed(-exp)
	}
	return expr[decimal.Decimal](literalNode{kind: LiteralNumber, text: text}, typ)
}
