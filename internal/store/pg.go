package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables used by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.SellOrder{},
		&schema.BuyOrder{},
		&schema.SalesContract{},
		&schema.SettlementTransaction{},
		&schema.KeyValueStore{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// LoadState reads every order, contract and sequence
func (s *pgStore) LoadState(ctx context.Context) (*State, error) {
	state := &State{Sequences: make(map[string]uint64)}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sellOrders []schema.SellOrder
		if err := tx.Order("id ASC").Find(&sellOrders).Error; err != nil {
			return fmt.Errorf("failed to load sell orders: %w", err)
		}
		for _, row := range sellOrders {
			state.SellOrders = append(state.SellOrders, fromSchemaSellOrder(row))
		}

		var buyOrders []schema.BuyOrder
		if err := tx.Order("seq ASC").Find(&buyOrders).Error; err != nil {
			return fmt.Errorf("failed to load buy orders: %w", err)
		}
		for _, row := range buyOrders {
			state.BuyOrders = append(state.BuyOrders, fromSchemaBuyOrder(row))
		}

		var contracts []schema.SalesContract
		if err := tx.Order("id ASC").Find(&contracts).Error; err != nil {
			return fmt.Errorf("failed to load sales contracts: %w", err)
		}

		var txs []schema.SettlementTransaction
		if err := tx.Order("contract_id ASC, seq ASC").Find(&txs).Error; err != nil {
			return fmt.Errorf("failed to load settlement transactions: %w", err)
		}
		ledger := make(map[uint64][]schema.SettlementTransaction)
		for _, row := range txs {
			ledger[row.ContractID] = append(ledger[row.ContractID], row)
		}

		for _, row := range contracts {
			c, err := fromSchemaContract(row, ledger[row.ID])
			if err != nil {
				return err
			}
			state.Contracts = append(state.Contracts, c)
		}

		var kvs []schema.KeyValueStore
		if err := tx.Where("key LIKE ?", "seq:%").Find(&kvs).Error; err != nil {
			return fmt.Errorf("failed to load sequences: %w", err)
		}
		for _, kv := range kvs {
			v, err := strconv.ParseUint(kv.Value, 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse sequence %s: %w", kv.Key, err)
			}
			state.Sequences[kv.Key] = v
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Loaded sales engine state",
		zap.Int("sell_orders", len(state.SellOrders)),
		zap.Int("buy_orders", len(state.BuyOrders)),
		zap.Int("contracts", len(state.Contracts)),
	)

	return state, nil
}

// Commit applies a changeset in a single transaction
func (s *pgStore) Commit(ctx context.Context, changes *Changeset) error {
	if changes.Empty() {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, order := range changes.SellOrders {
			row := toSchemaSellOrder(order)
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"status", "contract_id", "updated_at",
				}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to upsert sell order %d: %w", order.ID, err)
			}
		}

		if len(changes.DeletedBuyOrders) > 0 {
			ids := make([]string, 0, len(changes.DeletedBuyOrders))
			for _, id := range changes.DeletedBuyOrders {
				ids = append(ids, string(id))
			}
			if err := tx.Where("confirmation_id IN ?", ids).Delete(&schema.BuyOrder{}).Error; err != nil {
				return fmt.Errorf("failed to delete buy orders: %w", err)
			}
		}

		for _, order := range changes.BuyOrders {
			row := toSchemaBuyOrder(order)
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "confirmation_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"purchase_price", "updated_at",
				}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to upsert buy order %s: %w", order.ConfirmationID, err)
			}
		}

		for _, contract := range changes.Contracts {
			row, err := toSchemaContract(contract)
			if err != nil {
				return err
			}
			err = tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"status", "commission_percent", "execution_date", "updated_at",
				}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to upsert sales contract %d: %w", contract.ID, err)
			}

			txs := toSchemaTransactions(contract)
			if len(txs) == 0 {
				continue
			}
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "contract_id"}, {Name: "seq"}},
				DoNothing: true,
			}).Create(&txs).Error
			if err != nil {
				return fmt.Errorf("failed to append transactions of contract %d: %w", contract.ID, err)
			}
		}

		for key, value := range changes.Sequences {
			kv := schema.KeyValueStore{
				Key:   key,
				Value: strconv.FormatUint(value, 10),
			}
			if err := tx.Save(&kv).Error; err != nil {
				return fmt.Errorf("failed to save sequence %s: %w", key, err)
			}
		}

		return nil
	})
}

// Reset deletes all engine data
func (s *pgStore) Reset(ctx context.Context) error {
	start := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE TABLE settlement_transactions, sales_contracts, buy_orders, sell_orders").Error; err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
		if err := tx.Where("key LIKE ?", "seq:%").Delete(&schema.KeyValueStore{}).Error; err != nil {
			return fmt.Errorf("failed to delete sequences: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WarnCtx(ctx, "Sales datastore reset", zap.Duration("duration", time.Since(start)))
	return nil
}
