package main

import (
	"github.com/Rhymond/go-money"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

// formatMoney renders d in the currency's own notation, e.g. "$1,234.50".
// The amount is rounded to the currency's minor unit before formatting.
func formatMoney(d domain.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.String() + " " + currency
	}
	minor, err := d.MinorUnits(int32(cur.Fraction))
	if err != nil {
		return d.String() + " " + currency
	}
	return money.New(minor, cur.Code).Display()
}

func formatPercent(d domain.Decimal) string {
	rounded, err := d.Round(2)
	if err != nil {
		return d.String() + "%"
	}
	return rounded.String() + "%"
}

// formatReturn prefixes a percentage with an up or down marker.
func formatReturn(d domain.Decimal) string {
	if d.Cmp(domain.Zero) >= 0 {
		return "▲ " + formatPercent(d)
	}
	return "▼ " + formatPercent(d)
}

// sumOutstanding totals the outstanding amounts of cards.
func sumOutstanding(cards []domain.CreditCard) (domain.Decimal, error) {
	total := domain.NewDecimalFromInt(0)
	for _, c := range cards {
		var err error
		if total, err = total.Add(c.OutstandingAmount); err != nil {
			return domain.Decimal{}, err
		}
	}
	return total, nil
}
