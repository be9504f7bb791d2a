package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/JinFuuMugen/foodorder/internal/facade"
	"github.com/JinFuuMugen/foodorder/internal/logger"
	"github.com/JinFuuMugen/foodorder/internal/models"
)

type Orderer interface {
	OrderProduct(kind models.ProductKind) (models.Receipt, error)
}

type Summary struct {
	Succeeded int
	Failed    int
	Receipts  []models.Receipt
}

// Run places every order in turn and writes one line per outcome to w.
// A failed order does not stop the ones after it.
func Run(w io.Writer, o Orderer, kinds []models.ProductKind) Summary {
	var sum Summary

	for _, kind := range kinds {
		receipt, err := o.OrderProduct(kind)
		if err != nil {
			sum.Failed++

			var fundsErr *facade.InsufficientFundsError
			if errors.As(err, &fundsErr) {
				fmt.Fprintf(w, "cannot order %s: insufficient funds\n", fundsErr.Kind)
				continue
			}

			logger.Errorf("order %s: %v", kind, err)
			fmt.Fprintf(w, "cannot order %s: %v\n", kind, err)
			continue
		}

		sum.Succeeded++
		sum.Receipts = append(sum.Receipts, receipt)
		fmt.Fprintf(w, "ordered %s: paid %d\n", receipt.Kind, receipt.Price)
	}

	return sum
}
