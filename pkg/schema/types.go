package schema

import (
	"errors"
	"fmt"
	"time"
)

// ExchangeName defines supported exchange.
type ExchangeName string

const (
	BINANCE ExchangeName = "binance"
)

// MarketType categorizes market segments.
type MarketType string

const (
	FUTURESUSDT MarketType = "futures_usdt" // USDT-margined
)

// ContractType is the exchange's contractType tag for a futures instrument.
type ContractType string

const (
	ContractTypePerpetual           ContractType = "PERPETUAL"
	ContractTypeCurrentMonth        ContractType = "CURRENT_MONTH"
	ContractTypeNextMonth           ContractType = "NEXT_MONTH"
	ContractTypeCurrentQuarter      ContractType = "CURRENT_QUARTER"
	ContractTypeNextQuarter         ContractType = "NEXT_QUARTER"
	ContractTypePerpetualDelivering ContractType = "PERPETUAL_DELIVERING"
)

// Contract is one entry of the exchangeInfo symbols array.
// Only entries carrying both fields as strings are represented.
type Contract struct {
	Symbol       string       `json:"symbol"`       // 交易所格式的币对符号
	ContractType ContractType `json:"contractType"` // 合约类型
}

// ExchangeInfo 表示交易所的交易规则信息
type ExchangeInfo struct {
	Exchange  ExchangeName `json:"exchange"`  // 交易所名称
	Market    MarketType   `json:"market"`    // 市场类型
	Symbols   []Contract   `json:"symbols"`   // 交易对列表，保持接口返回顺序
	UpdatedAt time.Time    `json:"updatedAt"` // 更新时间
}

// ErrMalformedResponse is wrapped when a response body is not valid JSON.
var ErrMalformedResponse = errors.New("malformed response")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("unexpected http status: %s", e.Status)
	}
	return fmt.Sprintf("unexpected http status: %d", e.StatusCode)
}
