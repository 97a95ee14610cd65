package chat

import "strings"

// investmentKeywords is the fixed vocabulary for the binary classifier.
// Substring matching is intentional and cheap; it does produce false
// positives on unrelated text containing e.g. "price".
var investmentKeywords = []string{
	"gold", "investment", "invest", "buying", "purchase", "digital gold",
	"precious metals", "portfolio", "savings", "returns", "inflation",
	"hedge", "market", "price",
}

// IsInvestmentRelated reports whether a message touches gold investment.
// Case-insensitive substring match, no side effects, never fails.
func IsInvestmentRelated(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range investmentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
