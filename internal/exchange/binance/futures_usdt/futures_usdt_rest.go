package futures_usdt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kingsmao/perp-ticker-list/pkg/logger"
	"github.com/kingsmao/perp-ticker-list/pkg/schema"
)

const (
	binanceFuturesUSDTBaseURL = "https://fapi.binance.com"
	apiV1ExchangeInfo         = "/fapi/v1/exchangeInfo"

	// 使用浏览器 UA，避免被简单的反爬策略拦截
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// FuturesUSDTREST implements RESTClient for Binance USDT-margined Futures.
type FuturesUSDTREST struct {
	http *resty.Client
}

func NewFuturesUSDTREST() *FuturesUSDTREST {
	return NewFuturesUSDTRESTWithBaseURL(binanceFuturesUSDTBaseURL)
}

// NewFuturesUSDTRESTWithBaseURL points the client at another host, e.g. a test server.
func NewFuturesUSDTRESTWithBaseURL(baseURL string) *FuturesUSDTREST {
	return &FuturesUSDTREST{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("User-Agent", browserUserAgent),
	}
}

// GetExchangeInfo issues a single GET to the exchangeInfo endpoint.
// Transport failures and malformed bodies are returned as errors; a non-2xx
// status is returned as *schema.StatusError.
func (f *FuturesUSDTREST) GetExchangeInfo(ctx context.Context) (schema.ExchangeInfo, error) {
	r, err := f.http.R().SetContext(ctx).Get(apiV1ExchangeInfo)
	if err != nil {
		return schema.ExchangeInfo{}, fmt.Errorf("binance futures usdt exchangeInfo request: %w", err)
	}
	if !r.IsSuccess() {
		return schema.ExchangeInfo{}, &schema.StatusError{
			StatusCode: r.StatusCode(),
			Status:     r.Status(),
		}
	}

	// 保存原始响应结果用于调试
	logger.Debug("Binance Futures USDT ExchangeInfo 原始响应长度: %d bytes", len(r.Body()))

	contracts, err := DecodeExchangeInfo(r.Body())
	if err != nil {
		return schema.ExchangeInfo{}, err
	}

	return schema.ExchangeInfo{
		Exchange:  schema.BINANCE,
		Market:    schema.FUTURESUSDT,
		Symbols:   contracts,
		UpdatedAt: time.Now(),
	}, nil
}

// DecodeExchangeInfo reads the symbols array of an exchangeInfo document.
//
// Only a body that is not JSON at all is an error. A missing or non-array
// "symbols" yields no contracts, and elements lacking a string "symbol" or
// "contractType" are skipped.
func DecodeExchangeInfo(body []byte) ([]schema.Contract, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrMalformedResponse, err)
	}

	root, ok := doc.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	items, ok := root["symbols"].([]interface{})
	if !ok {
		logger.Debug("exchangeInfo 响应缺少 symbols 数组")
		return nil, nil
	}

	contracts := make([]schema.Contract, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		symbol, ok := obj["symbol"].(string)
		if !ok {
			continue
		}
		contractType, ok := obj["contractType"].(string)
		if !ok {
			continue
		}
		contracts = append(contracts, schema.Contract{
			Symbol:       symbol,
			ContractType: schema.ContractType(contractType),
		})
	}

	logger.Debug("exchangeInfo symbols: %d, 有效条目: %d", len(items), len(contracts))
	return contracts, nil
}
