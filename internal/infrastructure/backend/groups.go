package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

const assetGroupsPath = "/asset-groups"

func (c *Client) ListAssetGroups(ctx context.Context) ([]domain.AssetGroup, error) {
	return getList[domain.AssetGroup](ctx, c, assetGroupsPath)
}

func (c *Client) GetAssetGroup(ctx context.Context, id int64) (*domain.AssetGroup, error) {
	return send[domain.AssetGroup](ctx, c, http.MethodGet, groupPath(id), nil)
}

func (c *Client) CreateAssetGroup(ctx context.Context, in domain.AssetGroupInput) (*domain.AssetGroup, error) {
	return send[domain.AssetGroup](ctx, c, http.MethodPost, assetGroupsPath, in)
}

func (c *Client) UpdateAssetGroup(ctx context.Context, id int64, in domain.AssetGroupInput) (*domain.AssetGroup, error) {
	return send[domain.AssetGroup](ctx, c, http.MethodPut, groupPath(id), in)
}

func (c *Client) DeleteAssetGroup(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodDelete, groupPath(id), nil, nil)
}

// AssetGroupPerformance returns one group's performance restricted to a portfolio.
func (c *Client) AssetGroupPerformance(ctx context.Context, groupID, portfolioID int64) (*domain.AssetGroupPerformance, error) {
	params := url.Values{}
	params.Add("portfolioId", strconv.FormatInt(portfolioID, 10))
	path := fmt.Sprintf("%s/performance?%s", groupPath(groupID), params.Encode())
	return send[domain.AssetGroupPerformance](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) PortfolioGroupPerformance(ctx context.Context, portfolioID int64) ([]domain.AssetGroupPerformance, error) {
	return getList[domain.AssetGroupPerformance](ctx, c, fmt.Sprintf("/portfolios/%d/asset-groups/performance", portfolioID))
}

func groupPath(id int64) string {
	return fmt.Sprintf("%s/%d", assetGroupsPath, id)
}
