package domain

import "strings"

// DueStatus classifies the payment urgency of a credit card.
type DueStatus string

const (
	DueStatusOK      DueStatus = "OK"
	DueStatusWarning DueStatus = "WARNING"
	DueStatusOverdue DueStatus = "OVERDUE"
)

type CreditCard struct {
	ID                int64     `json:"cardId"`
	PortfolioID       int64     `json:"portfolioId"`
	Name              string    `json:"cardName"`
	CreditLimit       Decimal   `json:"creditLimit"`
	OutstandingAmount Decimal   `json:"outstandingAmount"`
	AvailableCredit   Decimal   `json:"availableCredit"`
	CreditUtilization Decimal   `json:"creditUtilization"`
	DueDate           Date      `json:"dueDate"`
	DaysUntilDue      int64     `json:"daysUntilDue"`
	DueStatus         DueStatus `json:"dueStatus"`
	AlertMessage      string    `json:"alertMessage,omitempty"`
}

// CreditCardInput is used for both creation and full update. PortfolioID is
// filled in from the selected portfolio when zero.
type CreditCardInput struct {
	PortfolioID       int64    `json:"portfolioId"`
	Name              string   `json:"cardName"`
	CreditLimit       *Decimal `json:"creditLimit"`
	OutstandingAmount *Decimal `json:"outstandingAmount"`
	DueDate           Date     `json:"dueDate"`
}

func (in CreditCardInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("cardName", "Card name is required")
	}
	if err := requirePositive("creditLimit", "Credit limit", in.CreditLimit); err != nil {
		return err
	}
	if in.OutstandingAmount == nil {
		return invalid("outstandingAmount", "Outstanding amount is required")
	}
	if in.OutstandingAmount.IsNegative() {
		return invalid("outstandingAmount", "Outstanding amount cannot be negative")
	}
	if in.DueDate.IsZero() {
		return invalid("dueDate", "Due date is required")
	}
	return nil
}
