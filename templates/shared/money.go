package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBRL renders a price for display: two fixed decimals, comma separator,
// currency prefix. 19.9 -> "R$ 19,90".
func FormatBRL(v float64) string {
	return "R$ " + DecimalComma(v)
}

// DecimalComma renders two fixed decimals with a comma separator, no prefix.
func DecimalComma(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// EditComma renders a value for the edit form the way a Brazilian user would
// type it: shortest decimal form, comma separator. 19.9 -> "19,9".
func EditComma(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}
