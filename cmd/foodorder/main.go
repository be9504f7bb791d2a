package main

import (
	"fmt"
	"log"
	"os"

	"github.com/JinFuuMugen/foodorder/config"
	"github.com/JinFuuMugen/foodorder/internal/facade"
	"github.com/JinFuuMugen/foodorder/internal/ledger"
	"github.com/JinFuuMugen/foodorder/internal/logger"
	"github.com/JinFuuMugen/foodorder/internal/runner"
)

func main() {
	if err := logger.InitLogger(); err != nil {
		log.Fatalf("cannot init custom logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadFoodOrderConfig(os.Args[1:])
	if err != nil {
		logger.Fatalf("cannot load config: %v", err)
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatalf("cannot set log level: %v", err)
	}

	var opts []ledger.Option
	if cfg.LedgerDebit {
		opts = append(opts, ledger.WithDebit())
	}
	orders := facade.New(ledger.New(cfg.StartingBalance, opts...))

	logger.Infof("placing %d orders with balance %d", len(cfg.Kinds), cfg.StartingBalance)

	sum := runner.Run(os.Stdout, orders, cfg.Kinds)

	fmt.Printf("%d ordered, %d refused, balance %d\n", sum.Succeeded, sum.Failed, orders.Balance())
}
