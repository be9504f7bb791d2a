package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/JinFuuMugen/foodorder/internal/ledger"
	"github.com/JinFuuMugen/foodorder/internal/models"
)

const defaultOrders = "pizza,spaghetti,burger"

type FoodOrderConfig struct {
	StartingBalance int    `env:"STARTING_BALANCE"`
	Orders          string `env:"ORDERS"`
	LedgerDebit     bool   `env:"LEDGER_DEBIT"`
	LogLevel        string `env:"LOG_LEVEL"`

	Kinds []models.ProductKind
}

// LoadFoodOrderConfig reads flags from args, then lets the environment (and a
// .env file in the working directory, if any) override them.
func LoadFoodOrderConfig(args []string) (*FoodOrderConfig, error) {
	cfg := &FoodOrderConfig{
		StartingBalance: ledger.DefaultStartingBalance,
		Orders:          defaultOrders,
		LedgerDebit:     false,
		LogLevel:        "info",
	}

	fs := flag.NewFlagSet("foodorder", flag.ContinueOnError)
	fs.IntVar(&cfg.StartingBalance, "b", cfg.StartingBalance, "starting ledger balance")
	fs.StringVar(&cfg.Orders, "o", cfg.Orders, "comma separated products to order")
	fs.BoolVar(&cfg.LedgerDebit, "debit", cfg.LedgerDebit, "decrease the balance on successful orders")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("cannot parse flags: %w", err)
	}

	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("cannot parse env: %w", err)
	}

	if cfg.StartingBalance < 0 {
		return nil, errors.New("starting balance is negative")
	}

	if strings.TrimSpace(cfg.Orders) == "" {
		return nil, errors.New("orders are empty")
	}

	kinds, err := parseOrders(cfg.Orders)
	if err != nil {
		return nil, err
	}
	cfg.Kinds = kinds

	return cfg, nil
}

func parseOrders(s string) ([]models.ProductKind, error) {
	var kinds []models.ProductKind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kind, err := models.ParseProductKind(part)
		if err != nil {
			return nil, fmt.Errorf("cannot parse orders: %w", err)
		}
		kinds = append(kinds, kind)
	}

	if len(kinds) == 0 {
		return nil, errors.New("orders are empty")
	}

	return kinds, nil
}
