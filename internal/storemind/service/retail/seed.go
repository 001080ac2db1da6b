package retail

import (
	"time"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
)

// Sample data loaded by the providers when their store is empty. The
// stores and products line up across sales and inventory so the demo
// tool calls return coherent answers.

func day(offset int) time.Time {
	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

// DefaultSalesRecords returns the bundled sample sales history.
func DefaultSalesRecords() []entity.SalesRecord {
	return []entity.SalesRecord{
		{ID: "s-0001", Store: "downtown", Product: "espresso-maker", Quantity: 4, Revenue: 519.96, Date: day(0)},
		{ID: "s-0002", Store: "downtown", Product: "espresso-maker", Quantity: 2, Revenue: 259.98, Date: day(1)},
		{ID: "s-0003", Store: "downtown", Product: "grinder-pro", Quantity: 6, Revenue: 449.94, Date: day(1)},
		{ID: "s-0004", Store: "harborside", Product: "espresso-maker", Quantity: 1, Revenue: 129.99, Date: day(0)},
		{ID: "s-0005", Store: "harborside", Product: "kettle-gooseneck", Quantity: 9, Revenue: 404.91, Date: day(2)},
		{ID: "s-0006", Store: "harborside", Product: "grinder-pro", Quantity: 3, Revenue: 224.97, Date: day(3)},
		{ID: "s-0007", Store: "uptown", Product: "kettle-gooseneck", Quantity: 5, Revenue: 224.95, Date: day(2)},
		{ID: "s-0008", Store: "uptown", Product: "espresso-maker", Quantity: 3, Revenue: 389.97, Date: day(3)},
	}
}

// DefaultInventoryItems returns the bundled sample stock positions.
func DefaultInventoryItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{SKU: "EM-100-DT", Product: "espresso-maker", Store: "downtown", OnHand: 12, ReorderPoint: 5},
		{SKU: "EM-100-HB", Product: "espresso-maker", Store: "harborside", OnHand: 3, ReorderPoint: 5},
		{SKU: "EM-100-UT", Product: "espresso-maker", Store: "uptown", OnHand: 7, ReorderPoint: 5},
		{SKU: "GR-220-DT", Product: "grinder-pro", Store: "downtown", OnHand: 2, ReorderPoint: 4},
		{SKU: "GR-220-HB", Product: "grinder-pro", Store: "harborside", OnHand: 10, ReorderPoint: 4},
		{SKU: "KG-310-HB", Product: "kettle-gooseneck", Store: "harborside", OnHand: 20, ReorderPoint: 8},
		{SKU: "KG-310-UT", Product: "kettle-gooseneck", Store: "uptown", OnHand: 6, ReorderPoint: 8},
	}
}
