package executor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/adapter"
	"github.com/feral-file/ff-sales-engine/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-sales-engine/internal/api/shared/errors"
	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/engine"
	"github.com/feral-file/ff-sales-engine/internal/events"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/messaging"
	"github.com/feral-file/ff-sales-engine/internal/registry"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateSellOrder lists an asset on behalf of the seller
	CreateSellOrder(ctx context.Context, seller domain.Party, req *dto.SellOrderRequest) (*dto.CreateSellOrderResponse, error)

	// BatchCreateSellOrders lists several assets; each element succeeds or fails on its own
	BatchCreateSellOrders(ctx context.Context, seller domain.Party, req *dto.BatchSellOrderRequest) (*dto.BatchSellOrderResponse, error)

	// CancelSellOrder withdraws an active sell order owned by the caller
	CancelSellOrder(ctx context.Context, caller domain.Party, orderID domain.OrderID) (*dto.SellOrderResponse, error)

	// GetSellOrders retrieves every sell order
	GetSellOrders(ctx context.Context) (*dto.SellOrderListResponse, error)

	// GetSellOrder retrieves a single sell order
	GetSellOrder(ctx context.Context, orderID domain.OrderID) (*dto.SellOrderResponse, error)

	// GetSellOrdersByAsset retrieves the sell orders of an asset
	GetSellOrdersByAsset(ctx context.Context, assetID domain.AssetID) (*dto.SellOrderListResponse, error)

	// GetSellOrdersByCollection retrieves the sell orders of a collection
	GetSellOrdersByCollection(ctx context.Context, collectionID domain.CollectionID) (*dto.SellOrderListResponse, error)

	// GetSellOrdersBySeller retrieves the sell orders of a seller
	GetSellOrdersBySeller(ctx context.Context, seller domain.Party) (*dto.SellOrderListResponse, error)

	// PlaceBuyOrder records or replaces the caller's offer on an asset
	PlaceBuyOrder(ctx context.Context, buyer domain.Party, assetID domain.AssetID, req *dto.BuyOrderRequest) (*dto.CreateBuyOrderResponse, error)

	// CancelBuyOrder withdraws the caller's offer on an asset
	CancelBuyOrder(ctx context.Context, buyer domain.Party, assetID domain.AssetID) (*dto.BuyOrderResponse, error)

	// GetBuyOrders retrieves outstanding buy orders, optionally for one asset
	GetBuyOrders(ctx context.Context, assetID *domain.AssetID) (*dto.BuyOrderListResponse, error)

	// ExecuteBuyOrder matches the best offer on an asset against its active sell orders
	ExecuteBuyOrder(ctx context.Context, assetID domain.AssetID) (*dto.ExecuteBuyOrderResponse, error)

	// RedeemGift claims the gift matching the secret for the caller
	RedeemGift(ctx context.Context, redeemer domain.Party, req *dto.RedeemGiftRequest) (*dto.RedeemGiftResponse, error)

	// ApproveContract settles a pending contract; only its seller may approve
	ApproveContract(ctx context.Context, caller domain.Party, contractID domain.ContractID) (*dto.ContractResponse, error)

	// RejectContract rejects a pending contract; only its seller may reject
	RejectContract(ctx context.Context, caller domain.Party, contractID domain.ContractID) (*dto.ContractResponse, error)

	// BlockContract blocks a pending contract as an administrator
	BlockContract(ctx context.Context, contractID domain.ContractID) (*dto.ContractResponse, error)

	// GetContracts retrieves every sales contract
	GetContracts(ctx context.Context) (*dto.ContractListResponse, error)

	// GetContract retrieves a single sales contract
	GetContract(ctx context.Context, contractID domain.ContractID) (*dto.ContractResponse, error)

	// GetContractsByAsset retrieves the sales contracts of an asset
	GetContractsByAsset(ctx context.Context, assetID domain.AssetID) (*dto.ContractListResponse, error)

	// GetContractsByNFT retrieves the sales contracts of a token
	GetContractsByNFT(ctx context.Context, token domain.NFTToken) (*dto.ContractListResponse, error)

	// GetContractsByParty retrieves the sales contracts a party is seller or buyer of
	GetContractsByParty(ctx context.Context, party domain.Party) (*dto.ContractListResponse, error)

	// GetContractTransactions retrieves the ledger of one contract
	GetContractTransactions(ctx context.Context, contractID domain.ContractID) (*dto.TransactionListResponse, error)

	// GetTransactions retrieves the whole ledger
	GetTransactions(ctx context.Context) (*dto.TransactionListResponse, error)

	// GetAssetStats retrieves the sales statistics of an asset
	GetAssetStats(ctx context.Context, assetID domain.AssetID) (*dto.AssetStatsResponse, error)

	// GetManyAssetStats retrieves the sales statistics of several assets
	GetManyAssetStats(ctx context.Context, assetIDs []domain.AssetID) (*dto.AssetStatsListResponse, error)

	// GetCreatorStats retrieves creator earnings of several assets
	GetCreatorStats(ctx context.Context, assetIDs []domain.AssetID) (*dto.CreatorStatsListResponse, error)

	// GetTopSales retrieves assets ranked by completed sales
	GetTopSales(ctx context.Context) (*dto.TopSalesListResponse, error)

	// GetTrending retrieves assets ranked by recent sales growth
	GetTrending(ctx context.Context, limit int) (*dto.TopSalesListResponse, error)

	// GetUserStats retrieves the trading summary of a party
	GetUserStats(ctx context.Context, party domain.Party) (*dto.UserStatsResponse, error)

	// ResetDatastore clears every order, contract and sequence
	ResetDatastore(ctx context.Context) error
}

type executor struct {
	engine     *engine.Engine
	registry   registry.AssetRegistry
	dispatcher messaging.Dispatcher
	clock      adapter.Clock
}

// NewExecutor creates an executor. registry may be nil, in which case asset fields are taken from requests.
func NewExecutor(eng *engine.Engine, reg registry.AssetRegistry, dispatcher messaging.Dispatcher, clock adapter.Clock) Executor {
	if dispatcher == nil {
		dispatcher = messaging.NewNoopDispatcher()
	}
	return &executor{
		engine:     eng,
		registry:   reg,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// resolveAsset determines the asset a sell order refers to. Without a registry the
// asset fields come from the request and ownership is not tracked.
func (e *executor) resolveAsset(req *dto.SellOrderRequest) (registry.AssetInfo, error) {
	if e.registry == nil {
		if strings.TrimSpace(req.AssetID) == "" {
			return registry.AssetInfo{}, apierrors.NewValidationError("asset_id is required")
		}
		return registry.AssetInfo{
			NFTToken:     domain.NFTToken(strings.TrimSpace(req.NFTToken)),
			AssetID:      domain.AssetID(strings.TrimSpace(req.AssetID)),
			CollectionID: domain.CollectionID(strings.TrimSpace(req.CollectionID)),
			Creator:      domain.NewParty(req.Creator),
		}, nil
	}

	info, ok := e.registry.Resolve(domain.NFTToken(req.NFTToken))
	if !ok {
		return registry.AssetInfo{}, fmt.Errorf("token %s: %w", req.NFTToken, domain.ErrAssetNotFound)
	}
	if req.AssetID != "" && domain.AssetID(req.AssetID) != info.AssetID {
		return registry.AssetInfo{}, apierrors.NewValidationError(fmt.Sprintf("asset_id %s does not match nft_token %s", req.AssetID, req.NFTToken))
	}

	return *info, nil
}

func (e *executor) sellOrderInput(req *dto.SellOrderRequest) (domain.SellOrderInput, error) {
	if err := req.Validate(); err != nil {
		return domain.SellOrderInput{}, err
	}

	info, err := e.resolveAsset(req)
	if err != nil {
		return domain.SellOrderInput{}, err
	}

	in := req.ToInput(info.AssetID, info.CollectionID, info.Creator)
	in.Owner = info.Owner
	return in, nil
}

func (e *executor) CreateSellOrder(ctx context.Context, seller domain.Party, req *dto.SellOrderRequest) (*dto.CreateSellOrderResponse, error) {
	in, err := e.sellOrderInput(req)
	if err != nil {
		return nil, err
	}

	orderID, err := e.engine.SellOrder(ctx, seller, in)
	if err != nil {
		return nil, err
	}

	e.dispatchOrderEvent(ctx, events.EventTypeOrderListed, orderID)

	return &dto.CreateSellOrderResponse{OrderID: uint64(orderID)}, nil
}

func (e *executor) BatchCreateSellOrders(ctx context.Context, seller domain.Party, req *dto.BatchSellOrderRequest) (*dto.BatchSellOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp := &dto.BatchSellOrderResponse{
		Items: make([]dto.BatchSellOrderItem, len(req.Orders)),
	}

	// Elements rejected before reaching the engine keep their slot in the response
	inputs := make([]domain.SellOrderInput, 0, len(req.Orders))
	positions := make([]int, 0, len(req.Orders))
	for i := range req.Orders {
		resp.Items[i].Index = i
		in, err := e.sellOrderInput(&req.Orders[i])
		if err != nil {
			resp.Items[i].Error = itemError(err)
			continue
		}
		inputs = append(inputs, in)
		positions = append(positions, i)
	}

	result := e.engine.BatchSellOrder(ctx, seller, inputs)
	for _, item := range result.Items {
		pos := positions[item.Index]
		if item.Err != nil {
			resp.Items[pos].Error = itemError(item.Err)
			continue
		}
		id := uint64(item.OrderID)
		resp.Items[pos].OrderID = &id
		e.dispatchOrderEvent(ctx, events.EventTypeOrderListed, item.OrderID)
	}

	for _, item := range resp.Items {
		if item.Error != nil {
			resp.Failed++
		} else {
			resp.Created++
		}
	}

	return resp, nil
}

func itemError(err error) *dto.ItemError {
	apiErr := apierrors.FromError(err)
	message := apiErr.Message
	if apiErr.Details != "" {
		message = apiErr.Details
	}
	return &dto.ItemError{Code: string(apiErr.Code), Message: message}
}

func (e *executor) CancelSellOrder(ctx context.Context, caller domain.Party, orderID domain.OrderID) (*dto.SellOrderResponse, error) {
	order, err := e.engine.CancelSellOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	e.dispatch(ctx, events.NewOrderEvent(events.EventTypeOrderCancelled, order, e.clock.Now()))

	return dto.MapSellOrderToDTO(&order), nil
}

func (e *executor) GetSellOrders(ctx context.Context) (*dto.SellOrderListResponse, error) {
	return dto.MapSellOrdersToDTO(e.engine.SellOrders()), nil
}

func (e *executor) GetSellOrder(ctx context.Context, orderID domain.OrderID) (*dto.SellOrderResponse, error) {
	order, err := e.engine.GetSellOrder(orderID)
	if err != nil {
		return nil, err
	}
	return dto.MapSellOrderToDTO(&order), nil
}

func (e *executor) GetSellOrdersByAsset(ctx context.Context, assetID domain.AssetID) (*dto.SellOrderListResponse, error) {
	return dto.MapSellOrdersToDTO(e.engine.SellOrdersByAsset(assetID)), nil
}

func (e *executor) GetSellOrdersByCollection(ctx context.Context, collectionID domain.CollectionID) (*dto.SellOrderListResponse, error) {
	return dto.MapSellOrdersToDTO(e.engine.SellOrdersByCollection(collectionID)), nil
}

func (e *executor) GetSellOrdersBySeller(ctx context.Context, seller domain.Party) (*dto.SellOrderListResponse, error) {
	return dto.MapSellOrdersToDTO(e.engine.SellOrdersBySeller(seller)), nil
}

func (e *executor) PlaceBuyOrder(ctx context.Context, buyer domain.Party, assetID domain.AssetID, req *dto.BuyOrderRequest) (*dto.CreateBuyOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	confirmationID, err := e.engine.BuyOrder(ctx, assetID, buyer, req.ToInput())
	if err != nil {
		return nil, err
	}

	return &dto.CreateBuyOrderResponse{ConfirmationID: string(confirmationID)}, nil
}

func (e *executor) CancelBuyOrder(ctx context.Context, buyer domain.Party, assetID domain.AssetID) (*dto.BuyOrderResponse, error) {
	order, err := e.engine.CancelBuyOrder(ctx, buyer, assetID)
	if err != nil {
		return nil, err
	}
	return dto.MapBuyOrderToDTO(&order), nil
}

func (e *executor) GetBuyOrders(ctx context.Context, assetID *domain.AssetID) (*dto.BuyOrderListResponse, error) {
	if assetID != nil {
		return dto.MapBuyOrdersToDTO(e.engine.BuyOrdersByAsset(*assetID)), nil
	}
	return dto.MapBuyOrdersToDTO(e.engine.BuyOrders()), nil
}

func (e *executor) ExecuteBuyOrder(ctx context.Context, assetID domain.AssetID) (*dto.ExecuteBuyOrderResponse, error) {
	contractID, buyer, err := e.engine.ExecuteBuyOrder(ctx, assetID)
	if err != nil {
		return nil, err
	}

	e.dispatchContractEvent(ctx, events.EventTypeContractCreated, contractID)

	return &dto.ExecuteBuyOrderResponse{
		ContractID: uint64(contractID),
		Buyer:      buyer.String(),
	}, nil
}

func (e *executor) RedeemGift(ctx context.Context, redeemer domain.Party, req *dto.RedeemGiftRequest) (*dto.RedeemGiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contractID, err := e.engine.RedeemGift(ctx, redeemer, req.Secret)
	if err != nil {
		return nil, err
	}

	e.dispatchContractEvent(ctx, events.EventTypeGiftRedeemed, contractID)

	return &dto.RedeemGiftResponse{ContractID: uint64(contractID)}, nil
}

func (e *executor) ApproveContract(ctx context.Context, caller domain.Party, contractID domain.ContractID) (*dto.ContractResponse, error) {
	contract, err := e.engine.ApproveContract(ctx, caller, contractID)
	if err != nil {
		return nil, err
	}
	e.dispatch(ctx, events.NewContractEvent(events.EventTypeContractApproved, contract, e.clock.Now()))
	return dto.MapContractToDTO(&contract), nil
}

func (e *executor) RejectContract(ctx context.Context, caller domain.Party, contractID domain.ContractID) (*dto.ContractResponse, error) {
	contract, err := e.engine.RejectContract(ctx, caller, contractID)
	if err != nil {
		return nil, err
	}
	e.dispatch(ctx, events.NewContractEvent(events.EventTypeContractRejected, contract, e.clock.Now()))
	return dto.MapContractToDTO(&contract), nil
}

func (e *executor) BlockContract(ctx context.Context, contractID domain.ContractID) (*dto.ContractResponse, error) {
	contract, err := e.engine.BlockContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	e.dispatch(ctx, events.NewContractEvent(events.EventTypeContractBlocked, contract, e.clock.Now()))
	return dto.MapContractToDTO(&contract), nil
}

func (e *executor) GetContracts(ctx context.Context) (*dto.ContractListResponse, error) {
	return dto.MapContractsToDTO(e.engine.Contracts()), nil
}

func (e *executor) GetContract(ctx context.Context, contractID domain.ContractID) (*dto.ContractResponse, error) {
	contract, err := e.engine.GetContract(contractID)
	if err != nil {
		return nil, err
	}
	return dto.MapContractToDTO(&contract), nil
}

func (e *executor) GetContractsByAsset(ctx context.Context, assetID domain.AssetID) (*dto.ContractListResponse, error) {
	return dto.MapContractsToDTO(e.engine.ContractsByAsset(assetID)), nil
}

func (e *executor) GetContractsByNFT(ctx context.Context, token domain.NFTToken) (*dto.ContractListResponse, error) {
	return dto.MapContractsToDTO(e.engine.ContractsByNFT(token)), nil
}

func (e *executor) GetContractsByParty(ctx context.Context, party domain.Party) (*dto.ContractListResponse, error) {
	return dto.MapContractsToDTO(e.engine.ContractsByParty(party)), nil
}

func (e *executor) GetContractTransactions(ctx context.Context, contractID domain.ContractID) (*dto.TransactionListResponse, error) {
	txs, err := e.engine.ContractTransactions(contractID)
	if err != nil {
		return nil, err
	}
	return dto.MapContractTransactionsToDTO(contractID, txs), nil
}

func (e *executor) GetTransactions(ctx context.Context) (*dto.TransactionListResponse, error) {
	return dto.MapLedgerToDTO(e.engine.Transactions()), nil
}

func (e *executor) GetAssetStats(ctx context.Context, assetID domain.AssetID) (*dto.AssetStatsResponse, error) {
	s := e.engine.AssetStats(assetID)
	return dto.MapAssetStatsToDTO(&s), nil
}

func (e *executor) GetManyAssetStats(ctx context.Context, assetIDs []domain.AssetID) (*dto.AssetStatsListResponse, error) {
	return dto.MapManyAssetStatsToDTO(e.engine.ManyAssetStats(assetIDs)), nil
}

func (e *executor) GetCreatorStats(ctx context.Context, assetIDs []domain.AssetID) (*dto.CreatorStatsListResponse, error) {
	return dto.MapCreatorStatsToDTO(e.engine.CreatorAssetsStats(assetIDs)), nil
}

func (e *executor) GetTopSales(ctx context.Context) (*dto.TopSalesListResponse, error) {
	return dto.MapTopSalesToDTO(e.engine.TopSales()), nil
}

func (e *executor) GetTrending(ctx context.Context, limit int) (*dto.TopSalesListResponse, error) {
	return dto.MapTrendingToDTO(e.engine.Trending(limit)), nil
}

func (e *executor) GetUserStats(ctx context.Context, party domain.Party) (*dto.UserStatsResponse, error) {
	s := e.engine.UserSalesStats(party)
	return dto.MapUserStatsToDTO(&s), nil
}

func (e *executor) ResetDatastore(ctx context.Context) error {
	if err := e.engine.ResetDatastore(ctx); err != nil {
		return err
	}

	e.dispatch(ctx, events.NewResetEvent(e.clock.Now()))
	return nil
}

func (e *executor) dispatch(ctx context.Context, event *events.ContractEvent) {
	e.dispatcher.Dispatch(ctx, event)
}

func (e *executor) dispatchOrderEvent(ctx context.Context, eventType string, orderID domain.OrderID) {
	order, err := e.engine.GetSellOrder(orderID)
	if err != nil {
		// A concurrent reset can remove the order between the mutation and this lookup
		logger.WarnCtx(ctx, "Sell order vanished before its event was built", zap.Uint64("orderID", uint64(orderID)))
		return
	}
	e.dispatch(ctx, events.NewOrderEvent(eventType, order, e.clock.Now()))
}

func (e *executor) dispatchContractEvent(ctx context.Context, eventType string, contractID domain.ContractID) {
	contract, err := e.engine.GetContract(contractID)
	if err != nil {
		logger.WarnCtx(ctx, "Sales contract vanished before its event was built", zap.Uint64("contractID", uint64(contractID)))
		return
	}
	e.dispatch(ctx, events.NewContractEvent(eventType, contract, e.clock.Now()))
}
