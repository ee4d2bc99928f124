package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/feral-file/ff-sales-engine/internal/adapter"
	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// AssetRegistry resolves on-chain tokens to the assets and collections they belong to
//
//go:generate mockgen -source=asset.go -destination=../mocks/asset_registry.go -package=mocks -mock_names=AssetRegistry=MockAssetRegistry,AssetRegistryLoader=MockAssetRegistryLoader
type AssetRegistry interface {
	// Resolve looks up an asset by token
	Resolve(token domain.NFTToken) (*AssetInfo, bool)

	// Asset looks up an asset by its id
	Asset(assetID domain.AssetID) (*AssetInfo, bool)

	// Creator returns the creator of an asset, or an empty party if unknown
	Creator(assetID domain.AssetID) domain.Party
}

// AssetInfo represents an asset entry in the registry
type AssetInfo struct {
	NFTToken     domain.NFTToken     `json:"nft_token"`
	AssetID      domain.AssetID      `json:"asset_id"`
	CollectionID domain.CollectionID `json:"collection_id"`
	Creator      domain.Party        `json:"creator"`
	// Owner is the holder at the time the registry was issued. Empty when ownership is not tracked.
	Owner domain.Party `json:"owner,omitempty"`
}

// AssetRegistryData represents the structure of the registry JSON file
type AssetRegistryData struct {
	Version int         `json:"version"`
	Assets  []AssetInfo `json:"assets"`
}

// assetRegistry is the internal implementation of AssetRegistry interface
type assetRegistry struct {
	byToken map[domain.NFTToken]*AssetInfo
	byAsset map[domain.AssetID]*AssetInfo
}

// AssetRegistryLoader defines the interface for loading asset registries from files
type AssetRegistryLoader interface {
	// Load loads the asset registry from a JSON file
	Load(filePath string) (AssetRegistry, error)
}

// assetRegistryLoader is the internal implementation of AssetRegistryLoader interface
type assetRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewAssetRegistryLoader creates a new AssetRegistryLoader with injected dependencies
func NewAssetRegistryLoader(fs adapter.FileSystem, json adapter.JSON) AssetRegistryLoader {
	return &assetRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the asset registry from a JSON file
func (l *assetRegistryLoader) Load(filePath string) (AssetRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var registryData AssetRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}

	registry := &assetRegistry{
		byToken: make(map[domain.NFTToken]*AssetInfo, len(registryData.Assets)),
		byAsset: make(map[domain.AssetID]*AssetInfo, len(registryData.Assets)),
	}

	for i := range registryData.Assets {
		asset := &registryData.Assets[i]
		asset.NFTToken = domain.NFTToken(strings.TrimSpace(string(asset.NFTToken)))
		asset.Creator = domain.NewParty(string(asset.Creator))
		asset.Owner = domain.NewParty(string(asset.Owner))

		if asset.NFTToken == "" || asset.AssetID == "" {
			return nil, errors.New("registry entry requires nft_token and asset_id")
		}
		if _, exists := registry.byToken[asset.NFTToken]; exists {
			return nil, fmt.Errorf("duplicate registry entry for token %s", asset.NFTToken)
		}

		registry.byToken[asset.NFTToken] = asset
		// the first token listed for an asset describes it
		if _, exists := registry.byAsset[asset.AssetID]; !exists {
			registry.byAsset[asset.AssetID] = asset
		}
	}

	return registry, nil
}

// Resolve looks up an asset by token
func (r *assetRegistry) Resolve(token domain.NFTToken) (*AssetInfo, bool) {
	if r == nil {
		return nil, false
	}
	asset, ok := r.byToken[domain.NFTToken(strings.TrimSpace(string(token)))]
	return asset, ok
}

// Asset looks up an asset by its id
func (r *assetRegistry) Asset(assetID domain.AssetID) (*AssetInfo, bool) {
	if r == nil {
		return nil, false
	}
	asset, ok := r.byAsset[assetID]
	return asset, ok
}

// Creator returns the creator of an asset
func (r *assetRegistry) Creator(assetID domain.AssetID) domain.Party {
	asset, ok := r.Asset(assetID)
	if !ok {
		return ""
	}
	return asset.Creator
}
