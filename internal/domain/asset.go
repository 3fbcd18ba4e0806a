package domain

import (
	"slices"
	"strings"
)

type AssetType string

const (
	AssetTypeStock      AssetType = "STOCK"
	AssetTypeMutualFund AssetType = "MUTUAL_FUND"
	AssetTypeBond       AssetType = "BOND"
	AssetTypeETF        AssetType = "ETF"
	AssetTypeCash       AssetType = "CASH"
	AssetTypeOther      AssetType = "OTHER"
)

var assetTypes = []AssetType{
	AssetTypeStock, AssetTypeMutualFund, AssetTypeBond, AssetTypeETF, AssetTypeCash, AssetTypeOther,
}

func (t AssetType) IsValid() bool {
	return slices.Contains(assetTypes, t)
}

type ActionType string

const (
	ActionBuy            ActionType = "BUY"
	ActionSell           ActionType = "SELL"
	ActionPriceUpdate    ActionType = "PRICE_UPDATE"
	ActionQuantityUpdate ActionType = "QUANTITY_UPDATE"
)

// Asset is either a holding or, when IsWishlist is set, a wishlist item
// without a buy price. Valuation fields are computed by the API.
type Asset struct {
	ID                int64     `json:"assetId"`
	PortfolioID       int64     `json:"portfolioId"`
	Name              string    `json:"assetName"`
	Type              AssetType `json:"assetType"`
	Quantity          Decimal   `json:"quantity"`
	BuyPrice          *Decimal  `json:"buyPrice"`
	CurrentPrice      Decimal   `json:"currentPrice"`
	IsWishlist        bool      `json:"isWishlist"`
	InvestedValue     Decimal   `json:"investedValue"`
	CurrentValue      Decimal   `json:"currentValue"`
	AbsoluteReturn    Decimal   `json:"absoluteReturn"`
	PercentageReturn  Decimal   `json:"percentageReturn"`
	StockCategoryName string    `json:"stockCategoryName,omitempty"`
	GroupNames        []string  `json:"groupNames"`
}

type AssetPerformance struct {
	AssetID          int64     `json:"assetId"`
	AssetName        string    `json:"assetName"`
	AssetType        AssetType `json:"assetType"`
	IsWishlist       bool      `json:"isWishlist"`
	Quantity         Decimal   `json:"quantity"`
	BuyPrice         *Decimal  `json:"buyPrice"`
	CurrentPrice     Decimal   `json:"currentPrice"`
	InvestedValue    Decimal   `json:"investedValue"`
	CurrentValue     Decimal   `json:"currentValue"`
	AbsoluteReturn   Decimal   `json:"absoluteReturn"`
	PercentageReturn Decimal   `json:"percentageReturn"`
}

type AssetHistoryEntry struct {
	ID              int64      `json:"historyId"`
	AssetID         int64      `json:"assetId"`
	ActionType      ActionType `json:"actionType"`
	QuantityChanged Decimal    `json:"quantityChanged"`
	PriceAtThatTime Decimal    `json:"priceAtThatTime"`
	ActionDate      Date       `json:"actionDate"`
	Remarks         string     `json:"remarks,omitempty"`
}

// SplitHoldings partitions assets into holdings and wishlist items,
// preserving order.
func SplitHoldings(assets []Asset) (holdings, wishlist []Asset) {
	holdings = make([]Asset, 0, len(assets))
	wishlist = make([]Asset, 0)
	for _, a := range assets {
		if a.IsWishlist {
			wishlist = append(wishlist, a)
		} else {
			holdings = append(holdings, a)
		}
	}
	return holdings, wishlist
}

// AssetInput creates a holding, or a wishlist item when IsWishlist is set.
type AssetInput struct {
	Type            AssetType `json:"assetType"`
	Name            string    `json:"assetName"`
	Quantity        *Decimal  `json:"quantity"`
	BuyPrice        *Decimal  `json:"buyPrice"`
	CurrentPrice    *Decimal  `json:"currentPrice"`
	IsWishlist      bool      `json:"isWishlist"`
	StockCategoryID *int64    `json:"stockCategoryId"`
}

// Normalize drops fields the API ignores for this kind of asset: the buy
// price of a wishlist item and the category of a non-stock asset.
func (in AssetInput) Normalize() AssetInput {
	if in.IsWishlist {
		in.BuyPrice = nil
	}
	if in.Type != AssetTypeStock {
		in.StockCategoryID = nil
	}
	return in
}

func (in AssetInput) Validate() error {
	if !in.Type.IsValid() {
		return invalid("assetType", "Asset type is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return invalid("assetName", "Asset name is required")
	}
	if err := requirePositive("quantity", "Quantity", in.Quantity); err != nil {
		return err
	}
	if err := requirePositive("currentPrice", "Current price", in.CurrentPrice); err != nil {
		return err
	}
	if !in.IsWishlist {
		if err := requirePositive("buyPrice", "Buy price", in.BuyPrice); err != nil {
			return err
		}
	}
	if in.Type == AssetTypeStock && in.StockCategoryID == nil {
		return invalid("stockCategoryId", "Stock category is required for stocks")
	}
	return nil
}

// AssetUpdate is a partial update; nil fields are left unchanged.
type AssetUpdate struct {
	Name            *string    `json:"assetName,omitempty"`
	Type            *AssetType `json:"assetType,omitempty"`
	Quantity        *Decimal   `json:"quantity,omitempty"`
	CurrentPrice    *Decimal   `json:"currentPrice,omitempty"`
	StockCategoryID *int64     `json:"stockCategoryId,omitempty"`
}

func (in AssetUpdate) Validate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return invalid("assetName", "Asset name cannot be blank")
	}
	if in.Type != nil && !in.Type.IsValid() {
		return invalid("assetType", "Unknown asset type %q", string(*in.Type))
	}
	if err := optionalPositive("quantity", "Quantity", in.Quantity); err != nil {
		return err
	}
	return optionalPositive("currentPrice", "Current price", in.CurrentPrice)
}

const DefaultBuyRemarks = "Converted from wishlist"

// BuyInput converts a wishlist item into a holding. A nil Quantity keeps the
// quantity already recorded on the asset.
type BuyInput struct {
	BuyPrice *Decimal `json:"buyPrice"`
	Quantity *Decimal `json:"quantity"`
	Remarks  string   `json:"remarks,omitempty"`
}

func (in BuyInput) Normalize() BuyInput {
	if strings.TrimSpace(in.Remarks) == "" {
		in.Remarks = DefaultBuyRemarks
	}
	return in
}

func (in BuyInput) Validate() error {
	if err := requirePositive("buyPrice", "Buy price", in.BuyPrice); err != nil {
		return err
	}
	return optionalPositive("quantity", "Quantity", in.Quantity)
}
