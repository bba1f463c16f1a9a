package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OnHand derives quantity on hand from the append-only record:
//
//	company scope:   Σ lot quantities + Σ IN − Σ OUT + Σ adjustments
//	warehouse scope: same, with transfers subtracting at the source
//	                 warehouse and adding at the destination
//
// Transfers are excluded at company scope because they net to zero there.
func OnHand(lots []StockLot, movements []StockMovement, adjustments []InventoryAdjustment, warehouseID *uuid.UUID) decimal.Decimal {
	total := decimal.Zero

	for i := range lots {
		if warehouseID != nil && lots[i].WarehouseID != *warehouseID {
			continue
		}
		total = total.Add(lots[i].Quantity)
	}

	for i := range movements {
		if warehouseID == nil {
			total = total.Add(movements[i].CompanyContribution())
		} else {
			total = total.Add(movements[i].WarehouseContribution(*warehouseID))
		}
	}

	for i := range adjustments {
		if warehouseID != nil && adjustments[i].WarehouseID != *warehouseID {
			continue
		}
		total = total.Add(adjustments[i].Quantity)
	}

	return total
}
