package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

func (c *Client) ListAssets(ctx context.Context, portfolioID int64) ([]domain.Asset, error) {
	return getList[domain.Asset](ctx, c, fmt.Sprintf("/portfolios/%d/assets", portfolioID))
}

func (c *Client) ListWishlist(ctx context.Context, portfolioID int64) ([]domain.Asset, error) {
	return getList[domain.Asset](ctx, c, fmt.Sprintf("/portfolios/%d/wishlist", portfolioID))
}

func (c *Client) GetAsset(ctx context.Context, id int64) (*domain.Asset, error) {
	return send[domain.Asset](ctx, c, http.MethodGet, assetPath(id), nil)
}

func (c *Client) CreateAsset(ctx context.Context, portfolioID int64, in domain.AssetInput) (*domain.Asset, error) {
	return send[domain.Asset](ctx, c, http.MethodPost, fmt.Sprintf("/portfolios/%d/assets", portfolioID), in.Normalize())
}

func (c *Client) UpdateAsset(ctx context.Context, id int64, in domain.AssetUpdate) (*domain.Asset, error) {
	return send[domain.Asset](ctx, c, http.MethodPut, assetPath(id), in)
}

func (c *Client) DeleteAsset(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodDelete, assetPath(id), nil, nil)
}

// BuyAsset converts a wishlist item into a holding.
func (c *Client) BuyAsset(ctx context.Context, id int64, in domain.BuyInput) (*domain.Asset, error) {
	return send[domain.Asset](ctx, c, http.MethodPost, assetPath(id)+"/buy", in.Normalize())
}

func (c *Client) AssetHistory(ctx context.Context, id int64) ([]domain.AssetHistoryEntry, error) {
	return getList[domain.AssetHistoryEntry](ctx, c, assetPath(id)+"/history")
}

func (c *Client) AssetPerformance(ctx context.Context, id int64) (*domain.AssetPerformance, error) {
	return send[domain.AssetPerformance](ctx, c, http.MethodGet, assetPath(id)+"/performance", nil)
}

func (c *Client) AssetGroups(ctx context.Context, assetID int64) ([]domain.AssetGroup, error) {
	return getList[domain.AssetGroup](ctx, c, assetPath(assetID)+"/groups")
}

func (c *Client) AddAssetToGroups(ctx context.Context, assetID int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error) {
	return sendList[domain.AssetGroup](ctx, c, http.MethodPost, assetPath(assetID)+"/groups", in)
}

// ReplaceAssetGroups sets the asset's memberships to exactly in.GroupIDs.
func (c *Client) ReplaceAssetGroups(ctx context.Context, assetID int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error) {
	return sendList[domain.AssetGroup](ctx, c, http.MethodPut, assetPath(assetID)+"/groups", in)
}

func (c *Client) RemoveAssetFromGroup(ctx context.Context, assetID, groupID int64) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("%s/groups/%d", assetPath(assetID), groupID), nil, nil)
}

func assetPath(id int64) string {
	return fmt.Sprintf("/assets/%d", id)
}
