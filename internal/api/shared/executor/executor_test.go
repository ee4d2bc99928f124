package executor_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-sales-engine/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-sales-engine/internal/api/shared/errors"
	"github.com/feral-file/ff-sales-engine/internal/api/shared/executor"
	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/engine"
	"github.com/feral-file/ff-sales-engine/internal/events"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/mocks"
	"github.com/feral-file/ff-sales-engine/internal/registry"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	clock      *mocks.MockClock
	registry   *mocks.MockAssetRegistry
	dispatcher *mocks.MockDispatcher

	mu     sync.Mutex
	events []*events.ContractEvent

	executor executor.Executor
}

// setupTestExecutor creates an executor over a real engine and mocked infrastructure
func setupTestExecutor(t *testing.T, withRegistry bool) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		registry:   mocks.NewMockAssetRegistry(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
	}

	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tm.store.EXPECT().Reset(gomock.Any()).Return(nil).AnyTimes()
	tm.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *events.ContractEvent) {
			tm.mu.Lock()
			defer tm.mu.Unlock()
			tm.events = append(tm.events, event)
		}).AnyTimes()

	eng, err := engine.New(engine.Config{
		Policy: engine.Policy{
			CommissionPercent: decimal.NewFromInt(10),
			Platform:          "platform",
			Scale:             8,
		},
		AllowReset: true,
	}, tm.store, tm.clock)
	require.NoError(t, err)

	var reg registry.AssetRegistry
	if withRegistry {
		reg = tm.registry
	}
	tm.executor = executor.NewExecutor(eng, reg, tm.dispatcher, tm.clock)
	return tm
}

// tearDownTestExecutor cleans up the test mocks
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func (tm *testExecutorMocks) eventTypes() []string {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	types := make([]string, 0, len(tm.events))
	for _, e := range tm.events {
		types = append(types, e.EventType)
	}
	return types
}

func sellRequest(token, price string) *dto.SellOrderRequest {
	to := testNow.Add(7 * 24 * time.Hour)
	return &dto.SellOrderRequest{
		NFTToken:  token,
		Price:     price,
		OrderType: "marketplace",
		ToDate:    &to,
	}
}

func giftRequest(token, secret string) *dto.SellOrderRequest {
	req := sellRequest(token, "0")
	req.OrderType = "gift"
	req.Secret = secret
	return req
}

func expectAsset(tm *testExecutorMocks, token, assetID string) {
	tm.registry.EXPECT().Resolve(domain.NFTToken(token)).Return(&registry.AssetInfo{
		NFTToken:     domain.NFTToken(token),
		AssetID:      domain.AssetID(assetID),
		CollectionID: "collection-1",
		Creator:      "creator",
	}, true).AnyTimes()
}

func TestExecutor_SaleLifecycle(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	expectAsset(tm, "42", "a-42")

	created, err := tm.executor.CreateSellOrder(ctx, "seller", sellRequest("42", "100"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.OrderID)

	order, err := tm.executor.GetSellOrder(ctx, domain.OrderID(created.OrderID))
	require.NoError(t, err)
	assert.Equal(t, "a-42", order.AssetID)
	assert.Equal(t, "collection-1", order.CollectionID)
	assert.Equal(t, "creator", order.Creator)

	placed, err := tm.executor.PlaceBuyOrder(ctx, "buyer", "a-42", &dto.BuyOrderRequest{PurchasePrice: "120"})
	require.NoError(t, err)
	assert.NotEmpty(t, placed.ConfirmationID)

	executed, err := tm.executor.ExecuteBuyOrder(ctx, "a-42")
	require.NoError(t, err)
	assert.Equal(t, "buyer", executed.Buyer)

	contract, err := tm.executor.ApproveContract(ctx, "seller", domain.ContractID(executed.ContractID))
	require.NoError(t, err)
	assert.Equal(t, "approved", contract.Status)
	assert.Equal(t, "100", contract.PurchasePrice)
	require.Len(t, contract.Transactions, 2)

	txs, err := tm.executor.GetContractTransactions(ctx, domain.ContractID(executed.ContractID))
	require.NoError(t, err)
	assert.Equal(t, 2, txs.Total)

	ledger, err := tm.executor.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ledger.Total)

	stats, err := tm.executor.GetAssetStats(ctx, "a-42")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, "100", stats.Volume)

	userStats, err := tm.executor.GetUserStats(ctx, "seller")
	require.NoError(t, err)
	assert.Equal(t, 1, userStats.Sold)

	byParty, err := tm.executor.GetContractsByParty(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, 1, byParty.Total)

	byNFT, err := tm.executor.GetContractsByNFT(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 1, byNFT.Total)

	assert.Equal(t, []string{
		events.EventTypeOrderListed,
		events.EventTypeContractCreated,
		events.EventTypeContractApproved,
	}, tm.eventTypes())
}

func TestExecutor_CreateSellOrder_Ownership(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	tm.registry.EXPECT().Resolve(domain.NFTToken("42")).Return(&registry.AssetInfo{
		NFTToken:     "42",
		AssetID:      "a-42",
		CollectionID: "collection-1",
		Creator:      "creator",
		Owner:        "seller",
	}, true).AnyTimes()

	_, err := tm.executor.CreateSellOrder(ctx, "mallory", sellRequest("42", "100"))
	assert.ErrorIs(t, err, domain.ErrNotAssetOwner)
	assert.Equal(t, 403, apierrors.FromError(err).HTTPStatus())

	created, err := tm.executor.CreateSellOrder(ctx, "seller", sellRequest("42", "100"))
	require.NoError(t, err)
	_, err = tm.executor.PlaceBuyOrder(ctx, "buyer", "a-42", &dto.BuyOrderRequest{PurchasePrice: "100"})
	require.NoError(t, err)
	executed, err := tm.executor.ExecuteBuyOrder(ctx, "a-42")
	require.NoError(t, err)
	_, err = tm.executor.ApproveContract(ctx, "seller", domain.ContractID(executed.ContractID))
	require.NoError(t, err)

	// the approved sale moved the token to the buyer
	_, err = tm.executor.CreateSellOrder(ctx, "seller", sellRequest("42", "150"))
	assert.ErrorIs(t, err, domain.ErrNotAssetOwner)

	resold, err := tm.executor.CreateSellOrder(ctx, "buyer", sellRequest("42", "150"))
	require.NoError(t, err)
	assert.NotEqual(t, created.OrderID, resold.OrderID)
}

func TestExecutor_CreateSellOrder_UnknownToken(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)

	tm.registry.EXPECT().Resolve(domain.NFTToken("404")).Return(nil, false)

	_, err := tm.executor.CreateSellOrder(context.Background(), "seller", sellRequest("404", "1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tm.eventTypes())
}

func TestExecutor_CreateSellOrder_AssetMismatch(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)

	expectAsset(tm, "42", "a-42")
	req := sellRequest("42", "1")
	req.AssetID = "a-other"

	_, err := tm.executor.CreateSellOrder(context.Background(), "seller", req)
	require.Error(t, err)
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestExecutor_CreateSellOrder_WithoutRegistry(t *testing.T) {
	tm := setupTestExecutor(t, false)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	req := sellRequest("7", "5")
	_, err := tm.executor.CreateSellOrder(ctx, "seller", req)
	require.Error(t, err, "asset_id is required without a registry")

	req.AssetID = "a-7"
	req.CollectionID = "c-7"
	req.Creator = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	created, err := tm.executor.CreateSellOrder(ctx, "seller", req)
	require.NoError(t, err)

	order, err := tm.executor.GetSellOrder(ctx, domain.OrderID(created.OrderID))
	require.NoError(t, err)
	assert.Equal(t, "a-7", order.AssetID)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", order.Creator)

	byCollection, err := tm.executor.GetSellOrdersByCollection(ctx, "c-7")
	require.NoError(t, err)
	assert.Equal(t, 1, byCollection.Total)
}

func TestExecutor_BatchCreateSellOrders(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)

	expectAsset(tm, "1", "a-1")
	expectAsset(tm, "2", "a-2")

	invalid := sellRequest("3", "oops")
	resp, err := tm.executor.BatchCreateSellOrders(context.Background(), "seller", &dto.BatchSellOrderRequest{
		Orders: []dto.SellOrderRequest{
			*sellRequest("1", "10"),
			*invalid,
			*sellRequest("2", "20"),
			*sellRequest("1", "30"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 2, resp.Failed)
	require.Len(t, resp.Items, 4)

	for i, item := range resp.Items {
		assert.Equal(t, i, item.Index)
	}
	require.NotNil(t, resp.Items[0].OrderID)
	assert.Equal(t, uint64(1), *resp.Items[0].OrderID)
	require.NotNil(t, resp.Items[1].Error)
	assert.Equal(t, "validation_failed", resp.Items[1].Error.Code)
	require.NotNil(t, resp.Items[2].OrderID)
	assert.Equal(t, uint64(2), *resp.Items[2].OrderID)
	require.NotNil(t, resp.Items[3].Error)
	assert.Equal(t, "conflict", resp.Items[3].Error.Code)

	assert.Equal(t, []string{events.EventTypeOrderListed, events.EventTypeOrderListed}, tm.eventTypes())

	_, err = tm.executor.BatchCreateSellOrders(context.Background(), "seller", &dto.BatchSellOrderRequest{})
	assert.Error(t, err)
}

func TestExecutor_CancelSellOrder(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	expectAsset(tm, "42", "a-42")
	created, err := tm.executor.CreateSellOrder(ctx, "seller", sellRequest("42", "100"))
	require.NoError(t, err)

	_, err = tm.executor.CancelSellOrder(ctx, "intruder", domain.OrderID(created.OrderID))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	cancelled, err := tm.executor.CancelSellOrder(ctx, "seller", domain.OrderID(created.OrderID))
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	assert.Equal(t, []string{events.EventTypeOrderListed, events.EventTypeOrderCancelled}, tm.eventTypes())
}

func TestExecutor_BuyOrders(t *testing.T) {
	tm := setupTestExecutor(t, false)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	_, err := tm.executor.PlaceBuyOrder(ctx, "buyer", "a-1", &dto.BuyOrderRequest{PurchasePrice: "-3"})
	require.Error(t, err)

	_, err = tm.executor.PlaceBuyOrder(ctx, "buyer", "a-1", &dto.BuyOrderRequest{PurchasePrice: "3"})
	require.NoError(t, err)
	_, err = tm.executor.PlaceBuyOrder(ctx, "buyer", "a-2", &dto.BuyOrderRequest{PurchasePrice: "4"})
	require.NoError(t, err)

	all, err := tm.executor.GetBuyOrders(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	assetID := domain.AssetID("a-2")
	filtered, err := tm.executor.GetBuyOrders(ctx, &assetID)
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, "4", filtered.BuyOrders[0].PurchasePrice)

	cancelled, err := tm.executor.CancelBuyOrder(ctx, "buyer", "a-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", cancelled.AssetID)

	_, err = tm.executor.ExecuteBuyOrder(ctx, "a-2")
	assert.ErrorIs(t, err, domain.ErrNoMatch)

	// Buy orders are not broadcast
	assert.Empty(t, tm.eventTypes())
}

func TestExecutor_RedeemGift(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	expectAsset(tm, "9", "a-9")
	_, err := tm.executor.CreateSellOrder(ctx, "giver", giftRequest("9", "s3cret"))
	require.NoError(t, err)

	_, err = tm.executor.RedeemGift(ctx, "friend", &dto.RedeemGiftRequest{})
	require.Error(t, err)

	_, err = tm.executor.RedeemGift(ctx, "friend", &dto.RedeemGiftRequest{Secret: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidSecret)

	redeemed, err := tm.executor.RedeemGift(ctx, "friend", &dto.RedeemGiftRequest{Secret: "s3cret"})
	require.NoError(t, err)

	contract, err := tm.executor.GetContract(ctx, domain.ContractID(redeemed.ContractID))
	require.NoError(t, err)
	assert.Equal(t, "gift", contract.ExecutionType)
	assert.Equal(t, "friend", contract.Buyer)

	_, err = tm.executor.RedeemGift(ctx, "other", &dto.RedeemGiftRequest{Secret: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrAlreadyRedeemed)

	assert.Equal(t, []string{events.EventTypeOrderListed, events.EventTypeGiftRedeemed}, tm.eventTypes())
}

func TestExecutor_RejectAndBlock(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	expectAsset(tm, "1", "a-1")
	expectAsset(tm, "2", "a-2")

	open := func(token, assetID string) domain.ContractID {
		_, err := tm.executor.CreateSellOrder(ctx, "seller", sellRequest(token, "10"))
		require.NoError(t, err)
		_, err = tm.executor.PlaceBuyOrder(ctx, "buyer", domain.AssetID(assetID), &dto.BuyOrderRequest{PurchasePrice: "10"})
		require.NoError(t, err)
		executed, err := tm.executor.ExecuteBuyOrder(ctx, domain.AssetID(assetID))
		require.NoError(t, err)
		return domain.ContractID(executed.ContractID)
	}

	first := open("1", "a-1")
	second := open("2", "a-2")

	_, err := tm.executor.RejectContract(ctx, "buyer", first)
	assert.ErrorIs(t, err, domain.ErrNotContractSeller)

	rejected, err := tm.executor.RejectContract(ctx, "seller", first)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Empty(t, rejected.Transactions)

	blocked, err := tm.executor.BlockContract(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "blocked", blocked.Status)

	_, err = tm.executor.ApproveContract(ctx, "seller", second)
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)

	_, err = tm.executor.GetContract(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrContractNotFound)

	all, err := tm.executor.GetContracts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	byAsset, err := tm.executor.GetContractsByAsset(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, 1, byAsset.Total)

	types := tm.eventTypes()
	assert.Equal(t, events.EventTypeContractRejected, types[len(types)-2])
	assert.Equal(t, events.EventTypeContractBlocked, types[len(types)-1])
}

func TestExecutor_Stats(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	many, err := tm.executor.GetManyAssetStats(ctx, []domain.AssetID{"a-1", "a-2"})
	require.NoError(t, err)
	require.Len(t, many.Stats, 2)
	assert.Equal(t, 0, many.Stats[0].Count)

	creators, err := tm.executor.GetCreatorStats(ctx, []domain.AssetID{"a-1"})
	require.NoError(t, err)
	assert.NotNil(t, creators.Stats)

	top, err := tm.executor.GetTopSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, top.Assets)

	trending, err := tm.executor.GetTrending(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, trending.Assets)
}

func TestExecutor_ResetDatastore(t *testing.T) {
	tm := setupTestExecutor(t, true)
	defer tearDownTestExecutor(tm)
	ctx := context.Background()

	expectAsset(tm, "1", "a-1")
	_, err := tm.executor.CreateSellOrder(ctx, "seller", sellRequest("1", "10"))
	require.NoError(t, err)

	require.NoError(t, tm.executor.ResetDatastore(ctx))

	orders, err := tm.executor.GetSellOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, orders.Total)

	assert.Equal(t, []string{events.EventTypeOrderListed, events.EventTypeDatastoreReset}, tm.eventTypes())
}
