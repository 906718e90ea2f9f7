package serial

// Serial number layout
const (
	CategoryCodeLength = 3
	CategoryCodePad    = 'X'
	SequenceFormat     = "%03d"
	DateLayout         = "060102"
	SerialFormat       = "%s-%s-%s-" + SequenceFormat
)

// Batch number layout
const (
	BatchPrefixLength    = 3
	BatchTimestampLayout = "20060102150405"
	BatchSuffixLength    = 4
	BatchNumberFormat    = "%s-%s-%s"
)
