package engine_test

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

	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/engine"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/mocks"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testEngineMocks contains the mocks and the engine under test
type testEngineMocks struct {
	ctrl  *gomock.Controller
	store *mocks.MockStore
	clock *mocks.MockClock

	mu         sync.Mutex
	now        time.Time
	commits    []*store.Changeset
	failCommit error

	engine *engine.Engine
}

func testConfig() engine.Config {
	return engine.Config{
		Policy: engine.Policy{
			CommissionPercent: decimal.NewFromInt(10),
			Platform:          "platform",
			Scale:             8,
		},
		StatsCacheSize: 16,
		AllowReset:     true,
	}
}

// setupTestEngine creates an engine backed by a recording mock store
func setupTestEngine(t *testing.T, cfg engine.Config) *testEngineMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testEngineMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
		now:   baseTime,
	}

	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time {
		tm.mu.Lock()
		defer tm.mu.Unlock()
		return tm.now
	}).AnyTimes()

	tm.store.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, changes *store.Changeset) error {
			tm.mu.Lock()
			defer tm.mu.Unlock()
			if tm.failCommit != nil {
				return tm.failCommit
			}
			tm.commits = append(tm.commits, changes)
			return nil
		}).AnyTimes()

	e, err := engine.New(cfg, tm.store, tm.clock)
	require.NoError(t, err)
	tm.engine = e

	return tm
}

func tearDownTestEngine(tm *testEngineMocks) {
	tm.ctrl.Finish()
}

func (tm *testEngineMocks) advance(d time.Duration) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.now = tm.now.Add(d)
}

func (tm *testEngineMocks) commitCount() int {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return len(tm.commits)
}

// replayState folds the recorded changesets into the state a store would hold
func (tm *testEngineMocks) replayState() *store.State {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	sells := make(map[domain.OrderID]domain.SellOrder)
	buys := make(map[domain.ConfirmationID]domain.BuyOrder)
	contracts := make(map[domain.ContractID]domain.SalesContract)
	state := &store.State{Sequences: make(map[string]uint64)}

	for _, changes := range tm.commits {
		for _, o := range changes.SellOrders {
			sells[o.ID] = o
		}
		for _, id := range changes.DeletedBuyOrders {
			delete(buys, id)
		}
		for _, o := range changes.BuyOrders {
			buys[o.ConfirmationID] = o
		}
		for _, c := range changes.Contracts {
			contracts[c.ID] = c.Clone()
		}
		for key, value := range changes.Sequences {
			state.Sequences[key] = value
		}
	}

	for _, o := range sells {
		state.SellOrders = append(state.SellOrders, o)
	}
	for _, o := range buys {
		state.BuyOrders = append(state.BuyOrders, o)
	}
	for _, c := range contracts {
		state.Contracts = append(state.Contracts, c)
	}
	return state
}

func listing(token string, price int64) domain.SellOrderInput {
	return domain.SellOrderInput{
		NFTToken:     domain.NFTToken(token),
		AssetID:      domain.AssetID("asset-" + token),
		CollectionID: "collection-1",
		Creator:      "creator",
		Price:        decimal.NewFromInt(price),
		OrderType:    domain.SalesTypeMarketplace,
		FromDate:     baseTime.Add(-time.Hour),
		ToDate:       baseTime.Add(30 * 24 * time.Hour),
	}
}

func giftListing(token, secret string) domain.SellOrderInput {
	in := listing(token, 0)
	in.OrderType = domain.SalesTypeGift
	in.Secret = secret
	return in
}

func offer(price int64) domain.BuyOrderInput {
	return domain.BuyOrderInput{PurchasePrice: decimal.NewFromInt(price)}
}

func TestNew_InvalidPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy engine.Policy
	}{
		{name: "negative commission", policy: engine.Policy{CommissionPercent: decimal.NewFromInt(-1), Platform: "p"}},
		{name: "commission above 100", policy: engine.Policy{CommissionPercent: decimal.NewFromInt(101), Platform: "p"}},
		{name: "missing platform", policy: engine.Policy{CommissionPercent: decimal.NewFromInt(10)}},
		{name: "negative scale", policy: engine.Policy{CommissionPercent: decimal.NewFromInt(10), Platform: "p", Scale: -1}},
		{name: "scale beyond stored precision", policy: engine.Policy{CommissionPercent: decimal.NewFromInt(10), Platform: "p", Scale: 19}},
		{name: "commission with seven decimals", policy: engine.Policy{CommissionPercent: decimal.RequireFromString("2.1234567"), Platform: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			e, err := engine.New(engine.Config{Policy: tt.policy}, mocks.NewMockStore(ctrl), mocks.NewMockClock(ctrl))
			assert.Error(t, err)
			assert.Nil(t, e)
		})
	}
}

func TestSellOrder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		seller domain.Party
		input  func() domain.SellOrderInput
		err    error
	}{
		{
			name:   "gift without secret",
			seller: "seller",
			input:  func() domain.SellOrderInput { return giftListing("1", "") },
			err:    domain.ErrEmptySecret,
		},
		{
			name:   "window ends before it starts",
			seller: "seller",
			input: func() domain.SellOrderInput {
				in := listing("1", 10)
				in.ToDate = in.FromDate.Add(-time.Second)
				return in
			},
			err: domain.ErrInvalidRange,
		},
		{
			name:   "negative price",
			seller: "seller",
			input:  func() domain.SellOrderInput { return listing("1", -5) },
			err:    domain.ErrInvalidPrice,
		},
		{
			name:   "price finer than stored precision",
			seller: "seller",
			input: func() domain.SellOrderInput {
				in := listing("1", 0)
				in.Price = decimal.RequireFromString("0.0000000000000000001")
				return in
			},
			err: domain.ErrAmountOutOfRange,
		},
		{
			name:   "price with an oversized exponent",
			seller: "seller",
			input: func() domain.SellOrderInput {
				in := listing("1", 0)
				in.Price = decimal.RequireFromString("1e2000000000")
				return in
			},
			err: domain.ErrAmountOutOfRange,
		},
		{
			name:   "free marketplace listing",
			seller: "seller",
			input:  func() domain.SellOrderInput { return listing("1", 0) },
			err:    domain.ErrInvalidPrice,
		},
		{
			name:   "unknown order type",
			seller: "seller",
			input: func() domain.SellOrderInput {
				in := listing("1", 10)
				in.OrderType = "auction"
				return in
			},
			err: domain.ErrInvalidOrderType,
		},
		{
			name:   "missing token",
			seller: "seller",
			input: func() domain.SellOrderInput {
				in := listing("1", 10)
				in.NFTToken = ""
				return in
			},
			err: domain.ErrMissingField,
		},
		{
			name:   "missing seller",
			seller: "",
			input:  func() domain.SellOrderInput { return listing("1", 10) },
			err:    domain.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestEngine(t, testConfig())
			defer tearDownTestEngine(tm)

			_, err := tm.engine.SellOrder(context.Background(), tt.seller, tt.input())
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 0, tm.commitCount())
			assert.Empty(t, tm.engine.SellOrders())
		})
	}
}

func TestSellOrder_DefaultsFromDateToNow(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)

	in := listing("1", 10)
	in.FromDate = time.Time{}
	id, err := tm.engine.SellOrder(context.Background(), "seller", in)
	require.NoError(t, err)

	order, err := tm.engine.GetSellOrder(id)
	require.NoError(t, err)
	assert.Equal(t, baseTime, order.FromDate)
	assert.Equal(t, domain.OrderStatusActive, order.Status)
	assert.Equal(t, domain.Party("creator"), order.Creator)
}

func TestSellOrder_OrderUniqueness(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	first, err := tm.engine.SellOrder(ctx, "seller", listing("42", 100))
	require.NoError(t, err)

	_, err = tm.engine.SellOrder(ctx, "other", listing("42", 90))
	assert.ErrorIs(t, err, domain.ErrActiveListingExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = tm.engine.CancelSellOrder(ctx, "seller", first)
	require.NoError(t, err)

	second, err := tm.engine.SellOrder(ctx, "seller", listing("42", 90))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	active := 0
	for _, o := range tm.engine.SellOrdersByAsset("asset-42") {
		if o.Active() {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestSellOrder_SupersedesExpiredListing(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	expired := listing("7", 50)
	expired.FromDate = baseTime.Add(-2 * time.Hour)
	expired.ToDate = baseTime.Add(-time.Hour)
	oldID, err := tm.engine.SellOrder(ctx, "seller", expired)
	require.NoError(t, err)

	newID, err := tm.engine.SellOrder(ctx, "seller", listing("7", 60))
	require.NoError(t, err)

	old, err := tm.engine.GetSellOrder(oldID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSuperseded, old.Status)

	current, err := tm.engine.GetSellOrder(newID)
	require.NoError(t, err)
	assert.True(t, current.Active())
}

func TestSellOrder_DuplicateSecret(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	_, err := tm.engine.SellOrder(ctx, "seller", giftListing("1", "open-sesame"))
	require.NoError(t, err)

	_, err = tm.engine.SellOrder(ctx, "seller", giftListing("2", "open-sesame"))
	assert.ErrorIs(t, err, domain.ErrDuplicateSecret)

	// A redeemed secret stays reserved
	_, err = tm.engine.RedeemGift(ctx, "friend", "open-sesame")
	require.NoError(t, err)
	_, err = tm.engine.SellOrder(ctx, "seller", giftListing("3", "open-sesame"))
	assert.ErrorIs(t, err, domain.ErrDuplicateSecret)
}

func TestSellOrder_SecretIsNotRetained(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)

	id, err := tm.engine.SellOrder(context.Background(), "seller", giftListing("1", "open-sesame"))
	require.NoError(t, err)

	order, err := tm.engine.GetSellOrder(id)
	require.NoError(t, err)
	assert.NotEmpty(t, order.SecretHash)
	assert.NotContains(t, order.SecretHash, "open-sesame")

	for _, o := range tm.replayState().SellOrders {
		assert.NotEqual(t, "open-sesame", o.SecretHash)
	}
}

func TestBatchSellOrder(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)

	result := tm.engine.BatchSellOrder(context.Background(), "seller", []domain.SellOrderInput{
		listing("1", 10),
		listing("2", 0),
		listing("1", 20),
		giftListing("3", "secret"),
	})

	require.Len(t, result.Items, 4)
	assert.NoError(t, result.Items[0].Err)
	assert.ErrorIs(t, result.Items[1].Err, domain.ErrInvalidPrice)
	assert.ErrorIs(t, result.Items[2].Err, domain.ErrActiveListingExists)
	assert.NoError(t, result.Items[3].Err)
	assert.Equal(t, 2, result.Failed())
	assert.Equal(t, []domain.OrderID{result.Items[0].OrderID, result.Items[3].OrderID}, result.Created())
	assert.Len(t, tm.engine.SellOrdersBySeller("seller"), 2)
}

func TestBuyOrder(t *testing.T) {
	t.Run("rejects invalid offers", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		_, err := tm.engine.BuyOrder(context.Background(), "asset-1", "buyer", offer(0))
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
		_, err = tm.engine.BuyOrder(context.Background(), "asset-1", "", offer(5))
		assert.ErrorIs(t, err, domain.ErrMissingField)
		_, err = tm.engine.BuyOrder(context.Background(), "asset-1", "buyer", domain.BuyOrderInput{PurchasePrice: decimal.RequireFromString("0.0000000000000000001")})
		assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
		_, err = tm.engine.BuyOrder(context.Background(), "asset-1", "buyer", domain.BuyOrderInput{PurchasePrice: decimal.RequireFromString("1e2000000000")})
		assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
		assert.Equal(t, 0, tm.commitCount())
	})

	t.Run("resubmission replaces the previous offer", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		first, err := tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(50))
		require.NoError(t, err)
		assert.NotEmpty(t, first)

		tm.advance(time.Minute)
		second, err := tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(70))
		require.NoError(t, err)
		assert.Equal(t, first, second)

		orders := tm.engine.BuyOrdersByAsset("asset-1")
		require.Len(t, orders, 1)
		assert.True(t, orders[0].PurchasePrice.Equal(decimal.NewFromInt(70)))
		assert.Equal(t, baseTime, orders[0].CreatedAt)
		assert.Equal(t, baseTime.Add(time.Minute), orders[0].UpdatedAt)
	})

	t.Run("caller supplied offer ids", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		id, err := tm.engine.BuyOrder(ctx, "asset-1", "buyer", domain.BuyOrderInput{PurchasePrice: decimal.NewFromInt(10), OfferID: "offer-a"})
		require.NoError(t, err)
		assert.Equal(t, domain.ConfirmationID("offer-a"), id)

		_, err = tm.engine.BuyOrder(ctx, "asset-1", "other", domain.BuyOrderInput{PurchasePrice: decimal.NewFromInt(10), OfferID: "offer-a"})
		assert.ErrorIs(t, err, domain.ErrDuplicateOffer)

		id, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", domain.BuyOrderInput{PurchasePrice: decimal.NewFromInt(15), OfferID: "offer-b"})
		require.NoError(t, err)
		assert.Equal(t, domain.ConfirmationID("offer-b"), id)

		orders := tm.engine.BuyOrders()
		require.Len(t, orders, 1)
		assert.Equal(t, domain.ConfirmationID("offer-b"), orders[0].ConfirmationID)
		assert.Equal(t, []domain.ConfirmationID{"offer-a"}, tm.commits[len(tm.commits)-1].DeletedBuyOrders)
	})
}

func TestCancelBuyOrder(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	_, err := tm.engine.CancelBuyOrder(ctx, "buyer", "asset-1")
	assert.ErrorIs(t, err, domain.ErrBuyOrderNotFound)

	id, err := tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(10))
	require.NoError(t, err)

	removed, err := tm.engine.CancelBuyOrder(ctx, "buyer", "asset-1")
	require.NoError(t, err)
	assert.Equal(t, id, removed.ConfirmationID)
	assert.Empty(t, tm.engine.BuyOrders())
}

func TestCancelSellOrder(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	_, err := tm.engine.CancelSellOrder(ctx, "seller", 99)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	id, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
	require.NoError(t, err)

	_, err = tm.engine.CancelSellOrder(ctx, "intruder", id)
	assert.ErrorIs(t, err, domain.ErrNotOrderOwner)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	cancelled, err := tm.engine.CancelSellOrder(ctx, "seller", id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)

	_, err = tm.engine.CancelSellOrder(ctx, "seller", id)
	assert.ErrorIs(t, err, domain.ErrOrderConsumed)
}

func TestExecuteBuyOrder_SaleScenario(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	_, err := tm.engine.SellOrder(ctx, "seller", listing("42", 100))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-42", "buyer", offer(120))
	require.NoError(t, err)

	contractID, buyer, err := tm.engine.ExecuteBuyOrder(ctx, "asset-42")
	require.NoError(t, err)
	assert.Equal(t, domain.Party("buyer"), buyer)

	contract, err := tm.engine.GetContract(contractID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContractStatusPending, contract.Status)
	assert.True(t, contract.PurchasePrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, []domain.Party{"seller", "buyer"}, contract.Parties())
	assert.Equal(t, domain.SalesTypeMarketplace, contract.ExecutionType)
	assert.Equal(t, domain.NFTToken("42"), contract.NFTID)
	require.NotNil(t, contract.BuyOrder)
	assert.True(t, contract.BuyOrder.PurchasePrice.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, domain.OrderStatusSold, contract.SellOrder.Status)
	assert.Empty(t, contract.Transactions)
	assert.Empty(t, tm.engine.BuyOrders())

	approved, err := tm.engine.ApproveContract(ctx, "seller", contractID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContractStatusApproved, approved.Status)
	require.NotNil(t, approved.ExecutionDate)
	require.NotNil(t, approved.CommissionPercent)
	assert.True(t, approved.CommissionPercent.Equal(decimal.NewFromInt(10)))

	require.Len(t, approved.Transactions, 2)
	commission := approved.Transactions[0]
	assert.Equal(t, domain.TransactionTypeCommission, commission.Type)
	assert.Equal(t, domain.Party("buyer"), commission.From)
	assert.Equal(t, domain.Party("platform"), commission.To)
	assert.True(t, commission.Value.Equal(decimal.NewFromInt(10)))

	base := approved.Transactions[1]
	assert.Equal(t, domain.TransactionTypeBase, base.Type)
	assert.Equal(t, domain.Party("buyer"), base.From)
	assert.Equal(t, domain.Party("seller"), base.To)
	assert.True(t, base.Value.Equal(decimal.NewFromInt(90)))

	assert.True(t, engine.Settled(&approved).Equal(approved.PurchasePrice))
	assert.NoError(t, engine.Verify(&approved))

	s := tm.engine.AssetStats("asset-42")
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.Price.Equal(decimal.NewFromInt(100)))
}

func TestExecuteBuyOrder_Selection(t *testing.T) {
	t.Run("cheapest eligible sell wins, earliest listing on ties", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		pricey := listing("1", 80)
		cheapA := listing("2", 60)
		cheapB := listing("3", 60)
		for _, in := range []*domain.SellOrderInput{&pricey, &cheapA, &cheapB} {
			in.AssetID = "asset-x"
		}
		_, err := tm.engine.SellOrder(ctx, "seller-1", pricey)
		require.NoError(t, err)
		cheapAID, err := tm.engine.SellOrder(ctx, "seller-2", cheapA)
		require.NoError(t, err)
		_, err = tm.engine.SellOrder(ctx, "seller-3", cheapB)
		require.NoError(t, err)

		_, err = tm.engine.BuyOrder(ctx, "asset-x", "buyer", offer(100))
		require.NoError(t, err)

		id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-x")
		require.NoError(t, err)
		contract, err := tm.engine.GetContract(id)
		require.NoError(t, err)
		assert.Equal(t, cheapAID, contract.SellOrder.ID)
		assert.Equal(t, domain.Party("seller-2"), contract.Seller)
	})

	t.Run("earliest buy order is served first", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "early", offer(10))
		require.NoError(t, err)
		tm.advance(time.Second)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "late", offer(500))
		require.NoError(t, err)

		_, buyer, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		require.NoError(t, err)
		assert.Equal(t, domain.Party("early"), buyer)

		remaining := tm.engine.BuyOrdersByAsset("asset-1")
		require.Len(t, remaining, 1)
		assert.Equal(t, domain.Party("late"), remaining[0].Buyer)
	})

	t.Run("buy orders created together keep submission order", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "first", offer(10))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "second", offer(10))
		require.NoError(t, err)

		_, buyer, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		require.NoError(t, err)
		assert.Equal(t, domain.Party("first"), buyer)
	})

	t.Run("an offer below every price does not match", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 100))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(99))
		require.NoError(t, err)

		_, _, err = tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		assert.ErrorIs(t, err, domain.ErrNoMatch)
		assert.Len(t, tm.engine.BuyOrders(), 1)
		assert.Empty(t, tm.engine.Contracts())
	})

	t.Run("a seller never buys from themself", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "seller", offer(10))
		require.NoError(t, err)

		_, _, err = tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	})

	t.Run("no buy orders", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		_, err := tm.engine.SellOrder(context.Background(), "seller", listing("1", 10))
		require.NoError(t, err)

		_, _, err = tm.engine.ExecuteBuyOrder(context.Background(), "asset-1")
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	})

	t.Run("gift orders are not matched", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", giftListing("1", "secret"))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(10))
		require.NoError(t, err)

		_, _, err = tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	})

	t.Run("every compatible sell has expired", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(10))
		require.NoError(t, err)

		tm.advance(31 * 24 * time.Hour)
		_, _, err = tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		assert.ErrorIs(t, err, domain.ErrOrderExpired)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestExecuteBuyOrder_ConcurrentMatchIsExclusive(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
	require.NoError(t, err)

	const buyers = 16
	for i := 0; i < buyers; i++ {
		_, err := tm.engine.BuyOrder(ctx, "asset-1", domain.Party(string(rune('a'+i))), offer(20))
		require.NoError(t, err)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		noMatch   int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrNoMatch):
				noMatch++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, buyers-1, noMatch)
	assert.Len(t, tm.engine.Contracts(), 1)
	assert.Len(t, tm.engine.BuyOrders(), buyers-1)
}

func TestContractTransitions(t *testing.T) {
	openContract := func(t *testing.T, tm *testEngineMocks) domain.ContractID {
		ctx := context.Background()
		_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 100))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(100))
		require.NoError(t, err)
		id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
		require.NoError(t, err)
		return id
	}

	t.Run("only the seller approves or rejects", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		id := openContract(t, tm)

		_, err := tm.engine.ApproveContract(context.Background(), "buyer", id)
		assert.ErrorIs(t, err, domain.ErrNotContractSeller)
		_, err = tm.engine.RejectContract(context.Background(), "platform", id)
		assert.ErrorIs(t, err, domain.ErrNotContractSeller)

		c, err := tm.engine.GetContract(id)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusPending, c.Status)
	})

	t.Run("final states never change", func(t *testing.T) {
		for _, decide := range []struct {
			name   string
			status domain.ContractStatus
			apply  func(e *engine.Engine, id domain.ContractID) (domain.SalesContract, error)
		}{
			{"approve", domain.ContractStatusApproved, func(e *engine.Engine, id domain.ContractID) (domain.SalesContract, error) {
				return e.ApproveContract(context.Background(), "seller", id)
			}},
			{"reject", domain.ContractStatusRejected, func(e *engine.Engine, id domain.ContractID) (domain.SalesContract, error) {
				return e.RejectContract(context.Background(), "seller", id)
			}},
			{"block", domain.ContractStatusBlocked, func(e *engine.Engine, id domain.ContractID) (domain.SalesContract, error) {
				return e.BlockContract(context.Background(), id)
			}},
		} {
			t.Run(decide.name, func(t *testing.T) {
				tm := setupTestEngine(t, testConfig())
				defer tearDownTestEngine(tm)
				id := openContract(t, tm)

				decided, err := decide.apply(tm.engine, id)
				require.NoError(t, err)
				assert.Equal(t, decide.status, decided.Status)
				require.NotNil(t, decided.ExecutionDate)

				_, err = tm.engine.ApproveContract(context.Background(), "seller", id)
				assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
				_, err = tm.engine.RejectContract(context.Background(), "seller", id)
				assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
				_, err = tm.engine.BlockContract(context.Background(), id)
				assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)

				c, err := tm.engine.GetContract(id)
				require.NoError(t, err)
				assert.Equal(t, decide.status, c.Status)
				assert.NoError(t, engine.Verify(&c))
			})
		}
	})

	t.Run("rejected and blocked contracts carry no transactions", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		id := openContract(t, tm)

		rejected, err := tm.engine.RejectContract(context.Background(), "seller", id)
		require.NoError(t, err)
		assert.Empty(t, rejected.Transactions)

		txs, err := tm.engine.ContractTransactions(id)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("unknown contract", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		_, err := tm.engine.ApproveContract(context.Background(), "seller", 7)
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
		_, err = tm.engine.BlockContract(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = tm.engine.ContractTransactions(7)
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
	})
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		percent    string
		scale      int32
		commission string
		base       string
	}{
		{name: "whole amounts", price: "100", percent: "10", scale: 8, commission: "10", base: "90"},
		{name: "no commission", price: "55.5", percent: "0", scale: 8, commission: "0", base: "55.5"},
		{name: "full commission", price: "3", percent: "100", scale: 8, commission: "3", base: "0"},
		{name: "half rounds down to even", price: "1.25", percent: "10", scale: 2, commission: "0.12", base: "1.13"},
		{name: "half rounds up to even", price: "1.35", percent: "10", scale: 2, commission: "0.14", base: "1.21"},
		{name: "fractional percent", price: "33.33", percent: "2.5", scale: 2, commission: "0.83", base: "32.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)
			commission, base := engine.Split(price, decimal.RequireFromString(tt.percent), tt.scale)

			assert.True(t, commission.Equal(decimal.RequireFromString(tt.commission)), "commission %s", commission)
			assert.True(t, base.Equal(decimal.RequireFromString(tt.base)), "base %s", base)
			assert.True(t, commission.Add(base).Equal(price))
		})
	}
}

func TestApproveContract_ConservesFractionalPrices(t *testing.T) {
	cfg := testConfig()
	cfg.Policy.CommissionPercent = decimal.RequireFromString("2.5")
	cfg.Policy.Scale = 2
	tm := setupTestEngine(t, cfg)
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	in := listing("1", 0)
	in.Price = decimal.RequireFromString("33.33")
	_, err := tm.engine.SellOrder(ctx, "seller", in)
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(40))
	require.NoError(t, err)
	id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
	require.NoError(t, err)

	approved, err := tm.engine.ApproveContract(ctx, "seller", id)
	require.NoError(t, err)
	assert.True(t, engine.Settled(&approved).Equal(decimal.RequireFromString("33.33")))
	for _, tx := range approved.Transactions {
		assert.False(t, tx.Value.IsNegative())
	}
}

func TestRedeemGift(t *testing.T) {
	t.Run("redemption mints a zero value approved contract", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		orderID, err := tm.engine.SellOrder(ctx, "seller", giftListing("9", "s3cret"))
		require.NoError(t, err)

		contractID, err := tm.engine.RedeemGift(ctx, "friend", "s3cret")
		require.NoError(t, err)

		contract, err := tm.engine.GetContract(contractID)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusApproved, contract.Status)
		assert.Equal(t, domain.SalesTypeGift, contract.ExecutionType)
		assert.True(t, contract.PurchasePrice.IsZero())
		assert.Nil(t, contract.CommissionPercent)
		assert.Nil(t, contract.BuyOrder)
		assert.Equal(t, domain.Party("friend"), contract.Buyer)
		require.Len(t, contract.Transactions, 1)
		assert.Equal(t, domain.TransactionTypeMint, contract.Transactions[0].Type)
		assert.Equal(t, domain.Party("seller"), contract.Transactions[0].From)
		assert.Equal(t, domain.Party("friend"), contract.Transactions[0].To)
		assert.True(t, contract.Transactions[0].Value.IsZero())
		assert.NoError(t, engine.Verify(&contract))

		order, err := tm.engine.GetSellOrder(orderID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusRedeemed, order.Status)
		require.NotNil(t, order.ContractID)
		assert.Equal(t, contractID, *order.ContractID)

		_, err = tm.engine.RedeemGift(ctx, "someone-else", "s3cret")
		assert.ErrorIs(t, err, domain.ErrAlreadyRedeemed)

		// Gifts never count as sales
		assert.Equal(t, 0, tm.engine.AssetStats("asset-9").Count)
		assert.Equal(t, 1, tm.engine.UserSalesStats("friend").GiftsReceived)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		_, err := tm.engine.SellOrder(context.Background(), "seller", giftListing("9", "s3cret"))
		require.NoError(t, err)

		_, err = tm.engine.RedeemGift(context.Background(), "friend", "guess")
		assert.ErrorIs(t, err, domain.ErrInvalidSecret)
		_, err = tm.engine.RedeemGift(context.Background(), "friend", "")
		assert.ErrorIs(t, err, domain.ErrEmptySecret)
	})

	t.Run("cancelled gift", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		id, err := tm.engine.SellOrder(ctx, "seller", giftListing("9", "s3cret"))
		require.NoError(t, err)
		_, err = tm.engine.CancelSellOrder(ctx, "seller", id)
		require.NoError(t, err)

		_, err = tm.engine.RedeemGift(ctx, "friend", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidSecret)
	})

	t.Run("expired gift", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		_, err := tm.engine.SellOrder(context.Background(), "seller", giftListing("9", "s3cret"))
		require.NoError(t, err)

		tm.advance(31 * 24 * time.Hour)
		_, err = tm.engine.RedeemGift(context.Background(), "friend", "s3cret")
		assert.ErrorIs(t, err, domain.ErrOrderExpired)
	})

	t.Run("gift not valid yet", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		in := giftListing("9", "s3cret")
		in.FromDate = baseTime.Add(time.Hour)
		_, err := tm.engine.SellOrder(context.Background(), "seller", in)
		require.NoError(t, err)

		_, err = tm.engine.RedeemGift(context.Background(), "friend", "s3cret")
		assert.ErrorIs(t, err, domain.ErrOrderNotStarted)
	})

	t.Run("concurrent redemptions succeed once", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", giftListing("9", "s3cret"))
		require.NoError(t, err)

		const redeemers = 8
		results := make(chan error, redeemers)
		var wg sync.WaitGroup
		for i := 0; i < redeemers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := tm.engine.RedeemGift(ctx, domain.Party(string(rune('a'+i))), "s3cret")
				results <- err
			}(i)
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrAlreadyRedeemed)
		}
		assert.Equal(t, 1, succeeded)
		assert.Len(t, tm.engine.Contracts(), 1)
	})
}

func TestCommitFailureLeavesStateUntouched(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	orderID, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(10))
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	tm.mu.Lock()
	tm.failCommit = dbErr
	tm.mu.Unlock()

	_, _, err = tm.engine.ExecuteBuyOrder(ctx, "asset-1")
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, domain.Kind(err))

	_, err = tm.engine.SellOrder(ctx, "seller", listing("2", 10))
	assert.ErrorIs(t, err, dbErr)

	order, err := tm.engine.GetSellOrder(orderID)
	require.NoError(t, err)
	assert.True(t, order.Active())
	assert.Len(t, tm.engine.BuyOrders(), 1)
	assert.Empty(t, tm.engine.Contracts())
	assert.Len(t, tm.engine.SellOrders(), 1)

	tm.mu.Lock()
	tm.failCommit = nil
	tm.mu.Unlock()

	// The failed listing did not consume an id
	nextID, err := tm.engine.SellOrder(ctx, "seller", listing("2", 10))
	require.NoError(t, err)
	assert.Equal(t, orderID+1, nextID)
}

func TestLoad_ReplayReproducesState(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	for _, token := range []string{"1", "2", "3"} {
		_, err := tm.engine.SellOrder(ctx, "seller", listing(token, 100))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, domain.AssetID("asset-"+token), "buyer", offer(150))
		require.NoError(t, err)
		id, _, err := tm.engine.ExecuteBuyOrder(ctx, domain.AssetID("asset-"+token))
		require.NoError(t, err)
		if token != "3" {
			_, err = tm.engine.ApproveContract(ctx, "seller", id)
			require.NoError(t, err)
		}
		tm.advance(time.Hour)
	}
	_, err := tm.engine.SellOrder(ctx, "seller", giftListing("4", "gift"))
	require.NoError(t, err)
	_, err = tm.engine.RedeemGift(ctx, "friend", "gift")
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-5", "collector", offer(5))
	require.NoError(t, err)

	reloaded := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(reloaded)
	reloaded.now = tm.now
	reloaded.store.EXPECT().LoadState(gomock.Any()).Return(tm.replayState(), nil)
	require.NoError(t, reloaded.engine.Load(ctx))

	assert.Equal(t, tm.engine.SellOrders(), reloaded.engine.SellOrders())
	assert.Equal(t, tm.engine.BuyOrders(), reloaded.engine.BuyOrders())
	assert.Equal(t, tm.engine.Contracts(), reloaded.engine.Contracts())
	assert.Equal(t, tm.engine.Transactions(), reloaded.engine.Transactions())

	for _, asset := range []domain.AssetID{"asset-1", "asset-2", "asset-3", "asset-4"} {
		live := tm.engine.AssetStats(asset)
		replayed := reloaded.engine.AssetStats(asset)
		assert.Equal(t, live.Count, replayed.Count, asset)
		assert.True(t, live.Volume.Equal(replayed.Volume), asset)
		assert.True(t, live.Price.Equal(replayed.Price), asset)
		assert.True(t, live.AveragePrice.Equal(replayed.AveragePrice), asset)
	}
	assert.Equal(t, tm.engine.TopSales(), reloaded.engine.TopSales())
	assert.Equal(t, tm.engine.UserSalesStats("seller").Sold, reloaded.engine.UserSalesStats("seller").Sold)

	// Sequences continue after a reload
	id, err := reloaded.engine.SellOrder(ctx, "seller", listing("6", 10))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderID(5), id)
	assert.Len(t, reloaded.engine.Contracts(), 4)
}

func TestLoad_StoreError(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)

	tm.store.EXPECT().LoadState(gomock.Any()).Return(nil, errors.New("db down"))
	assert.Error(t, tm.engine.Load(context.Background()))
}

func TestResetDatastore(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.AllowReset = false
		tm := setupTestEngine(t, cfg)
		defer tearDownTestEngine(tm)

		_, err := tm.engine.SellOrder(context.Background(), "seller", listing("1", 10))
		require.NoError(t, err)

		err = tm.engine.ResetDatastore(context.Background())
		assert.ErrorIs(t, err, domain.ErrResetDisabled)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Len(t, tm.engine.SellOrders(), 1)
	})

	t.Run("clears every query", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)
		ctx := context.Background()

		_, err := tm.engine.SellOrder(ctx, "seller", listing("42", 100))
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-42", "buyer", offer(120))
		require.NoError(t, err)
		id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-42")
		require.NoError(t, err)
		_, err = tm.engine.ApproveContract(ctx, "seller", id)
		require.NoError(t, err)
		_, err = tm.engine.BuyOrder(ctx, "asset-42", "late", offer(1))
		require.NoError(t, err)
		assert.Equal(t, 1, tm.engine.AssetStats("asset-42").Count)

		tm.store.EXPECT().Reset(gomock.Any()).Return(nil)
		require.NoError(t, tm.engine.ResetDatastore(ctx))

		assert.Empty(t, tm.engine.SellOrders())
		assert.Empty(t, tm.engine.SellOrdersByAsset("asset-42"))
		assert.Empty(t, tm.engine.BuyOrders())
		assert.Empty(t, tm.engine.Contracts())
		assert.Empty(t, tm.engine.ContractsByParty("seller"))
		assert.Empty(t, tm.engine.Transactions())
		assert.Equal(t, 0, tm.engine.AssetStats("asset-42").Count)
		assert.Empty(t, tm.engine.TopSales())

		// Token uniqueness and ids start over
		newID, err := tm.engine.SellOrder(ctx, "seller", listing("42", 100))
		require.NoError(t, err)
		assert.Equal(t, domain.OrderID(1), newID)
	})

	t.Run("store failure keeps state", func(t *testing.T) {
		tm := setupTestEngine(t, testConfig())
		defer tearDownTestEngine(tm)

		_, err := tm.engine.SellOrder(context.Background(), "seller", listing("1", 10))
		require.NoError(t, err)

		tm.store.EXPECT().Reset(gomock.Any()).Return(errors.New("truncate failed"))
		assert.Error(t, tm.engine.ResetDatastore(context.Background()))
		assert.Len(t, tm.engine.SellOrders(), 1)
	})
}

func TestAssetStats_CacheIsRefreshedOnApproval(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	assert.Equal(t, 0, tm.engine.AssetStats("asset-1").Count)

	_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 40))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(40))
	require.NoError(t, err)
	id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
	require.NoError(t, err)
	assert.Equal(t, 0, tm.engine.AssetStats("asset-1").Count)

	_, err = tm.engine.ApproveContract(ctx, "seller", id)
	require.NoError(t, err)

	s := tm.engine.AssetStats("asset-1")
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.Volume.Equal(decimal.NewFromInt(40)))

	many := tm.engine.ManyAssetStats([]domain.AssetID{"asset-1", "unknown"})
	require.Len(t, many, 2)
	assert.Equal(t, 1, many[0].Count)
	assert.Equal(t, domain.AssetID("unknown"), many[1].AssetID)
	assert.Equal(t, 0, many[1].Count)

	creators := tm.engine.CreatorAssetsStats([]domain.AssetID{"asset-1"})
	require.Len(t, creators, 1)
	assert.Equal(t, domain.Party("creator"), creators[0].Creator)
	assert.True(t, creators[0].Commissions.Equal(decimal.NewFromInt(4)))

	trending := tm.engine.Trending(5)
	require.Len(t, trending, 1)
	assert.Equal(t, 1, trending[0].LastWeek)

	user := tm.engine.UserSalesStats("seller")
	assert.Equal(t, 1, user.Sold)
	assert.True(t, user.Earned.Equal(decimal.NewFromInt(36)))
}

// approveSale lists token at price, buys it and approves the resulting contract
func approveSale(t *testing.T, tm *testEngineMocks, token string, price int64) {
	ctx := context.Background()
	asset := domain.AssetID("asset-" + token)

	_, err := tm.engine.SellOrder(ctx, "seller", listing(token, price))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, asset, "buyer", offer(price))
	require.NoError(t, err)
	id, _, err := tm.engine.ExecuteBuyOrder(ctx, asset)
	require.NoError(t, err)
	_, err = tm.engine.ApproveContract(ctx, "seller", id)
	require.NoError(t, err)
}

func TestSellOrder_AssetOwnership(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	owned := func(price int64) domain.SellOrderInput {
		in := listing("1", price)
		in.Owner = "seller"
		return in
	}

	_, err := tm.engine.SellOrder(ctx, "mallory", owned(40))
	assert.ErrorIs(t, err, domain.ErrNotAssetOwner)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, tm.commitCount())

	_, err = tm.engine.SellOrder(ctx, "seller", owned(40))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(40))
	require.NoError(t, err)
	id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
	require.NoError(t, err)

	// a rejected sale leaves the token with the seller
	_, err = tm.engine.RejectContract(ctx, "seller", id)
	require.NoError(t, err)
	_, err = tm.engine.SellOrder(ctx, "buyer", owned(40))
	assert.ErrorIs(t, err, domain.ErrNotAssetOwner)

	_, err = tm.engine.SellOrder(ctx, "seller", owned(40))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(40))
	require.NoError(t, err)
	id, _, err = tm.engine.ExecuteBuyOrder(ctx, "asset-1")
	require.NoError(t, err)
	_, err = tm.engine.ApproveContract(ctx, "seller", id)
	require.NoError(t, err)

	_, err = tm.engine.SellOrder(ctx, "seller", owned(60))
	assert.ErrorIs(t, err, domain.ErrNotAssetOwner)
	_, err = tm.engine.SellOrder(ctx, "buyer", owned(60))
	assert.NoError(t, err)
}

func TestAssetStats_ReturnsIndependentCopies(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)

	approveSale(t, tm, "1", 40)

	first := tm.engine.AssetStats("asset-1")
	require.NotNil(t, first.LastSaleAt)
	*first.LastSaleAt = time.Time{}

	second := tm.engine.AssetStats("asset-1")
	require.NotNil(t, second.LastSaleAt)
	assert.Equal(t, baseTime, *second.LastSaleAt)

	many := tm.engine.ManyAssetStats([]domain.AssetID{"asset-1"})
	require.Len(t, many, 1)
	assert.NotSame(t, second.LastSaleAt, many[0].LastSaleAt)
}

func TestManyAssetStats_SingleView(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	approveSale(t, tm, "1", 40)
	approveSale(t, tm, "2", 60)
	tm.store.EXPECT().Reset(gomock.Any()).Return(nil)

	ids := []domain.AssetID{"asset-1", "asset-2"}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			got := tm.engine.ManyAssetStats(ids)
			if !assert.Len(t, got, 2) || !assert.Equal(t, got[0].Count, got[1].Count, "stats mix states before and after reset") {
				return
			}
		}
	}()

	require.NoError(t, tm.engine.ResetDatastore(ctx))
	close(done)
	wg.Wait()

	got := tm.engine.ManyAssetStats(ids)
	assert.Equal(t, 0, got[0].Count)
	assert.Equal(t, 0, got[1].Count)
}

func TestQueries_UnknownKeysAreEmpty(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)

	assert.Empty(t, tm.engine.SellOrdersByAsset("nope"))
	assert.Empty(t, tm.engine.SellOrdersByCollection("nope"))
	assert.Empty(t, tm.engine.SellOrdersBySeller("nope"))
	assert.Empty(t, tm.engine.BuyOrdersByAsset("nope"))
	assert.Empty(t, tm.engine.ContractsByAsset("nope"))
	assert.Empty(t, tm.engine.ContractsByNFT("nope"))
	assert.Empty(t, tm.engine.ContractsByParty("nope"))

	_, err := tm.engine.GetSellOrder(1)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	_, err = tm.engine.GetContract(1)
	assert.ErrorIs(t, err, domain.ErrContractNotFound)
}

func TestQueries_ReturnCopies(t *testing.T) {
	tm := setupTestEngine(t, testConfig())
	defer tearDownTestEngine(tm)
	ctx := context.Background()

	_, err := tm.engine.SellOrder(ctx, "seller", listing("1", 10))
	require.NoError(t, err)
	_, err = tm.engine.BuyOrder(ctx, "asset-1", "buyer", offer(10))
	require.NoError(t, err)
	id, _, err := tm.engine.ExecuteBuyOrder(ctx, "asset-1")
	require.NoError(t, err)
	_, err = tm.engine.ApproveContract(ctx, "seller", id)
	require.NoError(t, err)

	contracts := tm.engine.ContractsByNFT("1")
	require.Len(t, contracts, 1)
	contracts[0].Transactions[0].Value = decimal.NewFromInt(1000)
	contracts[0].Status = domain.ContractStatusRejected

	again, err := tm.engine.GetContract(id)
	require.NoError(t, err)
	assert.Equal(t, domain.ContractStatusApproved, again.Status)
	assert.True(t, again.Transactions[0].Value.Equal(decimal.NewFromInt(1)))
}
