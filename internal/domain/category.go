package domain

import "strings"

// StockCategory is a classification tag for stock assets, such as a sector.
type StockCategory struct {
	ID          int64  `json:"categoryId"`
	Name        string `json:"categoryName"`
	Description string `json:"description,omitempty"`
}

type StockCategoryPerformance struct {
	CategoryID       int64   `json:"categoryId"`
	CategoryName     string  `json:"categoryName"`
	Description      string  `json:"description,omitempty"`
	TotalInvested    Decimal `json:"totalInvested"`
	CurrentValue     Decimal `json:"currentValue"`
	AbsoluteReturn   Decimal `json:"absoluteReturn"`
	PercentageReturn Decimal `json:"percentageReturn"`
	StockCount       int     `json:"stockCount"`
}

type StockCategoryInput struct {
	Name        string `json:"categoryName"`
	Description string `json:"description,omitempty"`
}

func (in StockCategoryInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("categoryName", "Category name is required")
	}
	return nil
}
