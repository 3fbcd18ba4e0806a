package domain

import "strings"

// Portfolio is a named investment container with an initial investment baseline.
type Portfolio struct {
	ID                int64   `json:"portfolioId"`
	Name              string  `json:"portfolioName"`
	CreatedDate       Date    `json:"createdDate"`
	InitialInvestment Decimal `json:"initialInvestment"`
}

// PortfolioSummary is the valuation computed by the API for one portfolio.
// AssetAllocation maps an asset type to its share of current value, in percent.
type PortfolioSummary struct {
	PortfolioID           int64              `json:"portfolioId"`
	PortfolioName         string             `json:"portfolioName"`
	TotalInvestedAmount   Decimal            `json:"totalInvestedAmount"`
	CurrentPortfolioValue Decimal            `json:"currentPortfolioValue"`
	AbsoluteReturn        Decimal            `json:"absoluteReturn"`
	PercentageReturn      Decimal            `json:"percentageReturn"`
	AssetAllocation       map[string]Decimal `json:"assetAllocation"`
}

type CreatePortfolioInput struct {
	Name              string   `json:"portfolioName"`
	InitialInvestment *Decimal `json:"initialInvestment"`
}

func (in CreatePortfolioInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("portfolioName", "Portfolio name is required")
	}
	return requirePositive("initialInvestment", "Initial investment", in.InitialInvestment)
}

// FindPortfolio returns the portfolio with the given id from list.
func FindPortfolio(list []Portfolio, id int64) (Portfolio, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Portfolio{}, false
}
