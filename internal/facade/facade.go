// Package facade exposes ordering as a single call over the catalog and the ledger.
//
// The facade owns exactly one ledger. Every order is checked against it, so there
// is no second kitchen-side ledger with its own balance.
package facade

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JinFuuMugen/foodorder/internal/catalog"
	"github.com/JinFuuMugen/foodorder/internal/ledger"
	"github.com/JinFuuMugen/foodorder/internal/logger"
	"github.com/JinFuuMugen/foodorder/internal/models"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError reports the product that could not be paid for.
type InsufficientFundsError struct {
	Kind models.ProductKind
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("cannot order %s: %v", e.Kind, ErrInsufficientFunds)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

type OrderFacade struct {
	ledger  *ledger.Ledger
	priceOf catalog.PriceFunc
}

type Option func(*OrderFacade)

func WithPriceFunc(fn catalog.PriceFunc) Option {
	return func(f *OrderFacade) {
		f.priceOf = fn
	}
}

func New(l *ledger.Ledger, opts ...Option) *OrderFacade {
	f := &OrderFacade{
		ledger:  l,
		priceOf: catalog.PriceOf,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OrderProduct prices kind, withdraws the price from the ledger and returns a
// receipt. It fails with *InsufficientFundsError when the withdrawal yields nothing.
func (f *OrderFacade) OrderProduct(kind models.ProductKind) (models.Receipt, error) {
	log := logger.With("attempt", uuid.NewString(), "product", string(kind))

	price := f.priceOf(kind)
	withdrawn := f.ledger.Withdraw(price)
	if withdrawn <= 0 {
		log.Warnw("order refused", "price", price, "balance", f.ledger.Balance())
		return models.Receipt{}, &InsufficientFundsError{Kind: kind}
	}

	log.Infow("order paid", "price", withdrawn, "balance", f.ledger.Balance())
	return models.Receipt{Kind: kind, Price: withdrawn}, nil
}

func (f *OrderFacade) Balance() int {
	return f.ledger.Balance()
}
