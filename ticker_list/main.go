package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kingsmao/perp-ticker-list/internal/exchange/binance/futures_usdt"
	"github.com/kingsmao/perp-ticker-list/internal/manager"
	"github.com/kingsmao/perp-ticker-list/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	rest := futures_usdt.NewFuturesUSDTREST()
	m := manager.NewManager(rest, manager.DefaultOutputPath)

	report, err := m.Build(context.Background())
	if err != nil {
		logger.Error("生成代码列表失败: %v", err)
		logger.Sync()
		os.Exit(1)
	}

	fmt.Println(report.Message())
}
