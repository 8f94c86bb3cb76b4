package schema

import (
	"strings"
)

const (
	// QuoteUSDT is the quote asset suffix of USDT-margined symbols.
	QuoteUSDT = "USDT"
	// TickerPrefix is prepended to every ticker string.
	TickerPrefix = "BINANCE:"
	// PerpetualSuffix is appended to the base asset of every ticker string.
	PerpetualSuffix = QuoteUSDT + ".P"
)

// IsUSDTPerpetual reports whether the contract is a perpetual quoted in USDT.
func (c Contract) IsUSDTPerpetual() bool {
	return c.ContractType == ContractTypePerpetual && strings.HasSuffix(c.Symbol, QuoteUSDT)
}

// Base returns the symbol with a single trailing "USDT" removed.
func (c Contract) Base() string {
	return strings.TrimSuffix(c.Symbol, QuoteUSDT)
}

// Ticker 返回展示用的代码，例如 BTCUSDT -> BINANCE:BTCUSDT.P
func (c Contract) Ticker() string {
	return TickerPrefix + c.Base() + PerpetualSuffix
}

// TickerKey extracts the comparison name from a ticker string: the text after
// the first ':' with a trailing "USDT.P" removed. A ticker without ':' yields "".
func TickerKey(ticker string) string {
	_, name, found := strings.Cut(ticker, ":")
	if !found {
		return ""
	}
	return strings.TrimSuffix(name, PerpetualSuffix)
}
