package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingsmao/perp-ticker-list/pkg/interfaces"
	"github.com/kingsmao/perp-ticker-list/pkg/logger"
	"github.com/kingsmao/perp-ticker-list/pkg/schema"
)

// DefaultOutputPath is created in the working directory.
const DefaultOutputPath = "binance_usdt_perpetual_futures.txt"

// Outcome says how a build finished without a fatal error.
type Outcome int

const (
	// OutcomeWritten means the ticker file was written.
	OutcomeWritten Outcome = iota
	// OutcomeHTTPStatus means the exchange answered with a non-2xx status.
	OutcomeHTTPStatus
	// OutcomeNoPairs means no USDT perpetual contract was found.
	OutcomeNoPairs
)

// Report summarizes one build.
type Report struct {
	Outcome    Outcome
	StatusCode int
	Status     string
	Path       string
	Count      int
}

// Message returns the line shown to the user for this report.
func (r Report) Message() string {
	switch r.Outcome {
	case OutcomeHTTPStatus:
		return fmt.Sprintf("API request failed. Status code: %d", r.StatusCode)
	case OutcomeNoPairs:
		return "No USDT perpetual futures pairs found. Check the API response."
	default:
		return fmt.Sprintf("Binance USDT perpetual futures ticker list written to %s.\nFound %d USDT perpetual futures pairs in total.", r.Path, r.Count)
	}
}

// Manager runs the fetch, filter, sort and write steps once.
type Manager struct {
	rest       interfaces.RESTClient
	outputPath string
}

func NewManager(rest interfaces.RESTClient, outputPath string) *Manager {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	return &Manager{
		rest:       rest,
		outputPath: outputPath,
	}
}

// Build fetches the instrument list and writes the sorted tickers.
// A non-2xx status or an empty result is reported in the Report with a nil
// error and leaves the output file untouched.
func (m *Manager) Build(ctx context.Context) (Report, error) {
	info, err := m.rest.GetExchangeInfo(ctx)
	if err != nil {
		var se *schema.StatusError
		if errors.As(err, &se) {
			logger.Warn("exchangeInfo 请求失败: %v", se)
			return Report{Outcome: OutcomeHTTPStatus, StatusCode: se.StatusCode, Status: se.Status}, nil
		}
		return Report{}, fmt.Errorf("fetch exchange info: %w", err)
	}

	tickers := CollectTickers(info.Symbols)
	logger.Debug("%s %s: %d 个合约, %d 个 USDT 永续", info.Exchange, info.Market, len(info.Symbols), len(tickers))
	if len(tickers) == 0 {
		return Report{Outcome: OutcomeNoPairs}, nil
	}

	SortTickers(tickers)

	if err := WriteLines(m.outputPath, tickers); err != nil {
		return Report{}, err
	}
	logger.Info("已写入 %d 个代码到 %s", len(tickers), m.outputPath)

	return Report{Outcome: OutcomeWritten, Path: m.outputPath, Count: len(tickers)}, nil
}

// CollectTickers keeps USDT perpetual contracts, in input order, as ticker strings.
func CollectTickers(contracts []schema.Contract) []string {
	tickers := make([]string, 0, len(contracts))
	for _, c := range contracts {
		if !c.IsUSDTPerpetual() {
			continue
		}
		tickers = append(tickers, c.Ticker())
	}
	return tickers
}
