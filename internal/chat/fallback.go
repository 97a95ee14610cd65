package chat

import "strings"

// Fallback categories used when the external generator is unavailable.
const (
	CategoryBenefits = "benefits"
	CategoryPrice    = "price"
	CategoryHow      = "how"
	CategorySafe     = "safe"
)

var fallbackResponses = map[string]string{
	CategoryBenefits: `Gold is an excellent hedge against inflation and currency devaluation! Here's why digital gold is perfect for you:

- Inflation protection: gold historically maintains purchasing power
- Easy investment: start with just ₹100, no minimum limits
- No storage hassles: your gold is safely stored in MMTC-PAMP vaults
- Instant liquidity: buy or sell anytime through the app
- Portfolio diversification: reduces overall investment risk

Digital gold gives you all the benefits of physical gold without the storage concerns. It's backed 1:1 by actual gold bars!`,

	CategoryPrice: `Gold is currently trading around ₹6,500 per gram - a great entry point! Here's what makes it attractive:

- Historical performance: gold has grown 8-10% annually over the long term
- Global factors: economic uncertainty makes gold more valuable
- Rupee hedge: protects against currency depreciation
- Timing: experts suggest a gold allocation of 5-10% in portfolios

With digital gold you can buy fractional grams, making it affordable for everyone. No need to buy full coins or bars!`,

	CategoryHow: `Investing in digital gold is incredibly simple and secure! Here's the complete process:

- What it is: 99.9% pure gold stored in secure MMTC-PAMP vaults
- How to buy: through the app - just enter an amount and confirm
- Payment: UPI, cards, or net banking
- Storage: professional vaults with insurance coverage
- Selling: instant sale at live market rates
- Physical conversion: convert to coins or bars if needed (min 0.5g)

Every gram you buy is backed by actual physical gold. You own real gold, just stored digitally!`,

	CategorySafe: `Absolutely! Digital gold is completely safe and regulated. Here's why you can trust it:

- Regulatory backing: follows RBI and government guidelines
- MMTC-PAMP partnership: India's premier precious metals company
- Secure vaults: your gold is stored in bank-grade facilities
- Purity guarantee: 99.9% pure gold, certified
- Insurance: full coverage on stored gold
- Audits: regular third-party audits ensure gold backing

It's as safe as keeping gold in a bank locker, but much more convenient and liquid!`,
}

// fallbackTriggers maps trigger words to a fallback category, checked in
// order. Evaluated only when the external generator fails.
var fallbackTriggers = []struct {
	category string
	words    []string
}{
	{CategoryBenefits, []string{"benefit", "advantage", "why"}},
	{CategoryPrice, []string{"price", "cost", "rate"}},
	{CategoryHow, []string{"how", "process", "buy"}},
	{CategorySafe, []string{"safe", "secure", "risk"}},
}

// FallbackResponse picks a canned response for the message. Total
// function: always returns a non-empty response, defaulting to the
// benefits category.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)
	for _, t := range fallbackTriggers {
		for _, w := range t.words {
			if strings.Contains(lower, w) {
				return fallbackResponses[t.category]
			}
		}
	}
	return fallbackResponses[CategoryBenefits]
}
