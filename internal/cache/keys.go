package cache

import "fmt"

// Key prefixes
const (
	PrefixItems       = "inventory:items"
	PrefixItem        = "inventory:item"
	PrefixBatches     = "inventory:batches"
	PrefixDeployments = "inventory:deployments"
	PrefixSerials     = "inventory:serials"
	PrefixLedger      = "inventory:ledger"
	PrefixCategories  = "inventory:categories"
)

// Key joins a prefix and its parts with ':'.
func Key(prefix string, parts ...any) string {
	k := prefix
	for _, p := range parts {
		k += fmt.Sprintf(":%v", p)
	}
	return k
}

// All matches every key under prefix, including the bare prefix key.
func All(prefix string) string {
	return prefix + "*"
}

// StockPatterns are the keys affected by any change to an item's stock.
func StockPatterns() []string {
	return []string{
		All(PrefixItems),
		All(PrefixItem),
		All(PrefixBatches),
		All(PrefixDeployments),
		All(PrefixSerials),
		All(PrefixLedger),
	}
}
