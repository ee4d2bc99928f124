package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/store/schema"
)

func toSchemaSellOrder(o domain.SellOrder) schema.SellOrder {
	row := schema.SellOrder{
		ID:           uint64(o.ID),
		Seller:       string(o.Seller),
		AssetID:      string(o.AssetID),
		CollectionID: string(o.CollectionID),
		Creator:      string(o.Creator),
		NFTToken:     string(o.NFTToken),
		Price:        o.Price,
		OrderType:    string(o.OrderType),
		FromDate:     o.FromDate,
		ToDate:       o.ToDate,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	if o.SecretHash != "" {
		hash := o.SecretHash
		row.SecretHash = &hash
	}
	if o.ContractID != nil {
		id := uint64(*o.ContractID)
		row.ContractID = &id
	}
	return row
}

func fromSchemaSellOrder(row schema.SellOrder) domain.SellOrder {
	o := domain.SellOrder{
		ID:           domain.OrderID(row.ID),
		Seller:       domain.Party(row.Seller),
		AssetID:      domain.AssetID(row.AssetID),
		CollectionID: domain.CollectionID(row.CollectionID),
		Creator:      domain.Party(row.Creator),
		NFTToken:     domain.NFTToken(row.NFTToken),
		Price:        row.Price,
		OrderType:    domain.SalesType(row.OrderType),
		FromDate:     row.FromDate.UTC(),
		ToDate:       row.ToDate.UTC(),
		Status:       domain.OrderStatus(row.Status),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
	if row.SecretHash != nil {
		o.SecretHash = *row.SecretHash
	}
	if row.ContractID != nil {
		id := domain.ContractID(*row.ContractID)
		o.ContractID = &id
	}
	return o
}

func toSchemaBuyOrder(o domain.BuyOrder) schema.BuyOrder {
	return schema.BuyOrder{
		ConfirmationID: string(o.ConfirmationID),
		AssetID:        string(o.AssetID),
		Buyer:          string(o.Buyer),
		PurchasePrice:  o.PurchasePrice,
		Seq:            o.Seq,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func fromSchemaBuyOrder(row schema.BuyOrder) domain.BuyOrder {
	return domain.BuyOrder{
		ConfirmationID: domain.ConfirmationID(row.ConfirmationID),
		AssetID:        domain.AssetID(row.AssetID),
		Buyer:          domain.Party(row.Buyer),
		PurchasePrice:  row.PurchasePrice,
		Seq:            row.Seq,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}
}

func toSchemaContract(c domain.SalesContract) (schema.SalesContract, error) {
	sellOrder, err := json.Marshal(c.SellOrder)
	if err != nil {
		return schema.SalesContract{}, fmt.Errorf("failed to marshal sell order snapshot: %w", err)
	}

	row := schema.SalesContract{
		ID:            uint64(c.ID),
		Status:        string(c.Status),
		SellOrderID:   uint64(c.SellOrder.ID),
		SellOrder:     datatypes.JSON(sellOrder),
		Seller:        string(c.Seller),
		Buyer:         string(c.Buyer),
		AssetID:       string(c.AssetID),
		CollectionID:  string(c.CollectionID),
		Creator:       string(c.Creator),
		NFTID:         string(c.NFTID),
		PurchasePrice: c.PurchasePrice,
		ExecutionType: string(c.ExecutionType),
		ExecutionDate: c.ExecutionDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	if c.BuyOrder != nil {
		buyOrder, err := json.Marshal(c.BuyOrder)
		if err != nil {
			return schema.SalesContract{}, fmt.Errorf("failed to marshal buy order snapshot: %w", err)
		}
		row.BuyOrder = datatypes.JSON(buyOrder)
	}

	if c.CommissionPercent != nil {
		row.CommissionPercent = decimal.NullDecimal{Decimal: *c.CommissionPercent, Valid: true}
	}

	return row, nil
}

func fromSchemaContract(row schema.SalesContract, txs []schema.SettlementTransaction) (domain.SalesContract, error) {
	c := domain.SalesContract{
		ID:            domain.ContractID(row.ID),
		Status:        domain.ContractStatus(row.Status),
		Seller:        domain.Party(row.Seller),
		Buyer:         domain.Party(row.Buyer),
		AssetID:       domain.AssetID(row.AssetID),
		CollectionID:  domain.CollectionID(row.CollectionID),
		Creator:       domain.Party(row.Creator),
		NFTID:         domain.NFTToken(row.NFTID),
		PurchasePrice: row.PurchasePrice,
		ExecutionType: domain.SalesType(row.ExecutionType),
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}

	if err := json.Unmarshal(row.SellOrder, &c.SellOrder); err != nil {
		return domain.SalesContract{}, fmt.Errorf("failed to unmarshal sell order snapshot of contract %d: %w", row.ID, err)
	}

	if len(row.BuyOrder) > 0 && string(row.BuyOrder) != "null" {
		var buyOrder domain.BuyOrder
		if err := json.Unmarshal(row.BuyOrder, &buyOrder); err != nil {
			return domain.SalesContract{}, fmt.Errorf("failed to unmarshal buy order snapshot of contract %d: %w", row.ID, err)
		}
		c.BuyOrder = &buyOrder
	}

	if row.CommissionPercent.Valid {
		pct := row.CommissionPercent.Decimal
		c.CommissionPercent = &pct
	}

	if row.ExecutionDate != nil {
		t := row.ExecutionDate.UTC()
		c.ExecutionDate = &t
	}

	for _, tx := range txs {
		c.Transactions = append(c.Transactions, domain.Transaction{
			From:          domain.Party(tx.FromParty),
			To:            domain.Party(tx.ToParty),
			Value:         tx.Value,
			Type:          domain.TransactionType(tx.Type),
			ExecutionDate: tx.ExecutionDate.UTC(),
		})
	}

	return c, nil
}

func toSchemaTransactions(c domain.SalesContract) []schema.SettlementTransaction {
	rows := make([]schema.SettlementTransaction, 0, len(c.Transactions))
	for i, tx := range c.Transactions {
		rows = append(rows, schema.SettlementTransaction{
			ContractID:    uint64(c.ID),
			Seq:           i,
			FromParty:     string(tx.From),
			ToParty:       string(tx.To),
			Value:         tx.Value,
			Type:          string(tx.Type),
			ExecutionDate: tx.ExecutionDate,
		})
	}
	return rows
}
