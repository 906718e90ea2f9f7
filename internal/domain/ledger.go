package domain

// LedgerSnapshot holds the quantities the stock identity is computed from,
// read in one statement so they describe the same instant.
type LedgerSnapshot struct {
	ItemID                int64
	ItemName              string
	QuantityInStock       int
	ReceivedActive        int // sum of quantities over active batches
	OutstandingBulk       int // bulk deployments not yet returned in usable condition
	UnavailableSerialized int // serialized units in active batches that are not AVAILABLE
}

// ExpectedStock is the stock level the recorded movements imply.
func (s LedgerSnapshot) ExpectedStock() int {
	return s.ReceivedActive - s.OutstandingBulk - s.UnavailableSerialized
}
