// Package serial decides which items are tracked per unit and generates the
// serial and batch numbers those units carry.
package serial

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

var returnableCategories = map[domain.CategoryType]bool{
	domain.CategoryEquipment:            true,
	domain.CategoryVehicles:             true,
	domain.CategoryCommunicationDevices: true,
	domain.CategorySupplies:             true,
}

// Names of gear that comes back from the field. Matched case-insensitively
// as substrings of the item name.
var returnableKeywords = []string{
	"stretcher",
	"spine board",
	"defibrillator",
	"ambulance",
	"aed",
	"radio",
	"handheld",
	"generator",
	"chainsaw",
	"pump",
	"helmet",
	"harness",
	"rope",
	"life vest",
	"life jacket",
	"flashlight",
	"megaphone",
	"binocular",
	"tent",
	"boat",
	"vehicle",
	"laptop",
	"tablet",
	"phone",
	"oxygen tank",
	"kit",
}

var folder = cases.Fold()

// RequiresSerialization reports whether receipts of item produce
// individually tracked units.
//
// An explicit IsReturnable on the item wins. Otherwise equipment-like
// categories are serialized, and failing that the item name is checked
// against the lexicon of returnable gear. category may be nil.
func RequiresSerialization(item domain.InventoryItem, category *domain.Category) bool {
	if item.IsReturnable != nil {
		return *item.IsReturnable
	}
	if category != nil && returnableCategories[category.Type] {
		return true
	}
	return matchesReturnableKeyword(item.Name)
}

func matchesReturnableKeyword(name string) bool {
	folded := folder.String(name)
	for _, kw := range returnableKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
