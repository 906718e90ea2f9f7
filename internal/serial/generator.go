package serial

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// Code returns the first n letters or digits of name, upper-cased and padded
// with 'X'. An empty name yields all padding.
func Code(name string, n int) string {
	var b strings.Builder
	for _, r := range name {
		if b.Len() >= n {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	code := upper.String(b.String())
	for len(code) < n {
		code += string(CategoryCodePad)
	}
	return code
}

// CategoryCode is the three-character prefix of every serial number.
func CategoryCode(categoryName string) string {
	return Code(categoryName, CategoryCodeLength)
}

// Generate produces quantity serial numbers of the form
// CAT-BATCHNUMBER-YYMMDD-NNN, sequence starting at 001. Sequences wider than
// three digits are rendered in full.
func Generate(categoryCode, batchNumber string, quantity int, at time.Time) []string {
	if quantity <= 0 {
		return nil
	}
	date := at.UTC().Format(DateLayout)
	serials := make([]string, quantity)
	for i := range serials {
		serials[i] = fmt.Sprintf(SerialFormat, categoryCode, batchNumber, date, i+1)
	}
	return serials
}

// BatchNumber derives a batch number from the item name and the receipt
// time. The random suffix keeps receipts in the same second distinct.
func BatchNumber(itemName string, at time.Time) string {
	suffix := upper.String(strings.ReplaceAll(uuid.NewString(), "-", "")[:BatchSuffixLength])
	return fmt.Sprintf(BatchNumberFormat, Code(itemName, BatchPrefixLength), at.UTC().Format(BatchTimestampLayout), suffix)
}
