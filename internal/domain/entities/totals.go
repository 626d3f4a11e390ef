package entities

import "github.com/shopspring/decimal"

// Totals is the derived financial view of an order. It is never stored.
type Totals struct {
	TotalPrice decimal.Decimal
	TotalPaid  decimal.Decimal
	// Balance is TotalPrice - TotalPaid and goes negative on overpayment.
	Balance decimal.Decimal
}

// ComputeTotals sums service prices and payments. Malformed amounts count as
// zero; empty sequences give zero totals.
func ComputeTotals(o ServiceOrder) Totals {
	price := decimal.Zero
	for _, s := range o.Services {
		price = price.Add(s.Price.Decimal())
	}
	paid := decimal.Zero
	for _, p := range o.Payments {
		paid = paid.Add(p.Amount.Decimal())
	}
	return Totals{
		TotalPrice: price,
		TotalPaid:  paid,
		Balance:    price.Sub(paid),
	}
}

func (o ServiceOrder) Totals() Totals {
	return ComputeTotals(o)
}
