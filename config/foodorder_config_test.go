package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JinFuuMugen/foodorder/internal/models"
)

func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STARTING_BALANCE", "ORDERS", "LEDGER_DEBIT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFoodOrderConfig_Defaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := LoadFoodOrderConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.StartingBalance)
	assert.False(t, cfg.LedgerDebit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, models.AllProducts(), cfg.Kinds)
}

func TestLoadFoodOrderConfig_Flags(t *testing.T) {
	unsetEnv(t)

	cfg, err := LoadFoodOrderConfig([]string{"-b", "300", "-o", "burger, pizza", "-debit", "-l", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.StartingBalance)
	assert.True(t, cfg.LedgerDebit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []models.ProductKind{models.ProductBurger, models.ProductPizza}, cfg.Kinds)
}

func TestLoadFoodOrderConfig_EnvOverridesFlags(t *testing.T) {
	unsetEnv(t)
	t.Setenv("STARTING_BALANCE", "350")
	t.Setenv("ORDERS", "spaghetti")
	t.Setenv("LEDGER_DEBIT", "true")

	cfg, err := LoadFoodOrderConfig([]string{"-b", "300", "-o", "burger"})
	require.NoError(t, err)
	assert.Equal(t, 350, cfg.StartingBalance)
	assert.True(t, cfg.LedgerDebit)
	assert.Equal(t, []models.ProductKind{models.ProductSpaghetti}, cfg.Kinds)
}

func TestLoadFoodOrderConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative balance", []string{"-b", "-1"}},
		{"unknown product", []string{"-o", "pizza,sushi"}},
		{"empty orders", []string{"-o", " "}},
		{"only separators", []string{"-o", ",,"}},
		{"unknown flag", []string{"-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)
			_, err := LoadFoodOrderConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadFoodOrderConfig_UnknownProductWrapsSentinel(t *testing.T) {
	unsetEnv(t)

	_, err := LoadFoodOrderConfig([]string{"-o", "sushi"})
	assert.ErrorIs(t, err, models.ErrUnknownProduct)
}
