package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-sales-engine/internal/api/shared/constants"
	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// BuyOrdersQueryParams holds query parameters for GET /buy-orders
type BuyOrdersQueryParams struct {
	AssetID string `form:"asset_id"`
}

// AssetIDsQueryParams holds query parameters for the multi-asset stats endpoints
type AssetIDsQueryParams struct {
	AssetIDs []string `form:"asset_id"`
}

// Validate validates the query parameters
func (p *AssetIDsQueryParams) Validate() error {
	if len(p.AssetIDs) == 0 {
		return fmt.Errorf("asset_id is required")
	}
	if len(p.AssetIDs) > constants.MAX_ASSETS_PER_STATS {
		return fmt.Errorf("maximum %d asset ids allowed", constants.MAX_ASSETS_PER_STATS)
	}
	for _, id := range p.AssetIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("asset_id must not be empty")
		}
	}
	return nil
}

// DomainIDs converts the asset ids
func (p *AssetIDsQueryParams) DomainIDs() []domain.AssetID {
	ids := make([]domain.AssetID, 0, len(p.AssetIDs))
	for _, id := range p.AssetIDs {
		ids = append(ids, domain.AssetID(strings.TrimSpace(id)))
	}
	return ids
}

// TrendingQueryParams holds query parameters for GET /stats/trending
type TrendingQueryParams struct {
	Limit int `form:"limit,default=10"`
}

// Validate validates the query parameters
func (p *TrendingQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be positive")
	}
	return nil
}

// ParseBuyOrdersQuery parses query parameters for GET /buy-orders
func ParseBuyOrdersQuery(c *gin.Context) (*BuyOrdersQueryParams, error) {
	var params BuyOrdersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.AssetID = strings.TrimSpace(params.AssetID)
	return &params, nil
}

// ParseAssetIDsQuery parses repeated asset_id query parameters.
// Comma separated values are accepted too: ?asset_id=a,b
func ParseAssetIDsQuery(c *gin.Context) (*AssetIDsQueryParams, error) {
	var params AssetIDsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	var ids []string
	for _, raw := range params.AssetIDs {
		ids = append(ids, strings.Split(raw, ",")...)
	}
	params.AssetIDs = ids
	return &params, nil
}

// ParseTrendingQuery parses query parameters for GET /stats/trending
func ParseTrendingQuery(c *gin.Context) (*TrendingQueryParams, error) {
	var params TrendingQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > constants.MAX_TRENDING_LIMIT {
		params.Limit = constants.MAX_TRENDING_LIMIT
	}
	return &params, nil
}

// parseID parses a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}
