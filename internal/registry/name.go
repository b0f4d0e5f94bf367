package registry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey returns the comparison key for a display name.
// Names are NFKC-normalized, case-folded and whitespace-collapsed, so
// "Gas Mask", "gas  mask" and "ＧＡＳ ＭＡＳＫ" share one key.
func NameKey(name string) string {
	folded := cases.Fold().String(norm.NFKC.String(name))
	return strings.Join(strings.Fields(folded), " ")
}
