package domain

import "strings"

// AssetGroup is a user-defined grouping of assets. Groups are global, not
// scoped to a portfolio.
type AssetGroup struct {
	ID          int64   `json:"groupId"`
	Name        string  `json:"groupName"`
	Description string  `json:"description,omitempty"`
	CreatedDate Date    `json:"createdDate"`
	AssetCount  int     `json:"assetCount"`
	Assets      []Asset `json:"assets,omitempty"`
}

// AssetGroupPerformance aggregates the holdings of one group within a
// portfolio. Wishlist items are excluded by the API.
type AssetGroupPerformance struct {
	GroupID          int64   `json:"groupId"`
	GroupName        string  `json:"groupName"`
	HoldingCount     int     `json:"holdingCount"`
	TotalInvested    Decimal `json:"totalInvested"`
	CurrentValue     Decimal `json:"currentValue"`
	AbsoluteReturn   Decimal `json:"absoluteReturn"`
	PercentageReturn Decimal `json:"percentageReturn"`
}

type AssetGroupInput struct {
	Name        string `json:"groupName"`
	Description string `json:"description,omitempty"`
}

func (in AssetGroupInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("groupName", "Group name is required")
	}
	return nil
}

// GroupMembershipInput adds (POST) or replaces (PUT) the groups of an asset.
type GroupMembershipInput struct {
	GroupIDs []int64 `json:"groupIds"`
}

func (in GroupMembershipInput) Validate() error {
	if len(in.GroupIDs) == 0 {
		return invalid("groupIds", "At least one group ID is required")
	}
	return nil
}
