package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Store backend names accepted by --store.type.
const (
	StoreTypeMemory = "memory"
	StoreTypeFile   = "file"
)

// StoreOptions configures the persistence backends used by the retail
// data services.
type StoreOptions struct {
	// Type selects the backend family: "memory" keeps everything
	// in-process, "file" uses the BoltDB/SQLite paths below.
	Type string `json:"type" mapstructure:"type"`
	// SalesDBPath is the BoltDB file backing the sales history.
	SalesDBPath string `json:"sales_db_path" mapstructure:"sales_db_path"`
	// InventoryDBPath is the SQLite file backing the inventory levels.
	InventoryDBPath string `json:"inventory_db_path" mapstructure:"inventory_db_path"`
}

// NewStoreOptions creates a StoreOptions with default values.
func NewStoreOptions() *StoreOptions {
	return &StoreOptions{
		Type:            StoreTypeMemory,
		SalesDBPath:     "data/storemind-sales.db",
		InventoryDBPath: "data/storemind-inventory.db",
	}
}

// Validate checks the StoreOptions for correctness.
func (o *StoreOptions) Validate() []error {
	var errs []error

	switch o.Type {
	case StoreTypeMemory, StoreTypeFile:
	default:
		errs = append(errs, fmt.Errorf("store.type %q must be one of %s, %s",
			o.Type, StoreTypeMemory, StoreTypeFile))
	}
	if o.Type == StoreTypeFile {
		if o.SalesDBPath == "" {
			errs = append(errs, fmt.Errorf("store.sales_db_path is required for the file backend"))
		}
		if o.InventoryDBPath == "" {
			errs = append(errs, fmt.Errorf("store.inventory_db_path is required for the file backend"))
		}
	}

	return errs
}

// AddFlags adds the StoreOptions flags to the given flag set.
func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Type, "store.type", o.Type,
		"Persistence backend for the retail data services, one of: memory, file.")
	fs.StringVar(&o.SalesDBPath, "store.sales-db-path", o.SalesDBPath,
		"Path to the BoltDB file backing the sales history (file backend).")
	fs.StringVar(&o.InventoryDBPath, "store.inventory-db-path", o.InventoryDBPath,
		"Path to the SQLite file backing the inventory levels (file backend).")
}
