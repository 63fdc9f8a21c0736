package listing

import (
	"strconv"
	"strings"
)

// KnownConditions lists the condition values the vision prompt asks for.
// Normalize documents but does not enforce them; a divergent value from the
// model is passed through as-is.
var KnownConditions = []string{
	"New",
	"Used - Like New",
	"Used - Good",
	"Used - Fair",
	"Refurbished",
}

// ListingData is the structured resale listing produced from one photo.
type ListingData struct {
	Title             string `json:"title"`
	Price             string `json:"price"`
	Description       string `json:"description"`
	Condition         string `json:"condition"`
	Location          string `json:"location"`
	Brand             string `json:"brand"`
	PickupAvailable   bool   `json:"pickupAvailable"`
	ShippingAvailable bool   `json:"shippingAvailable"`
	PickupNotes       string `json:"pickupNotes"`
}

// Normalize builds a ListingData from an untyped model payload. It is total:
// missing, null or mistyped keys degrade to the field's default instead of
// failing the request.
func Normalize(payload map[string]any) ListingData {
	return ListingData{
		Title:             stringField(payload["title"]),
		Price:             priceField(payload["price"]),
		Description:       stringField(payload["description"]),
		Condition:         stringField(payload["condition"]),
		Location:          stringField(payload["location"]),
		Brand:             stringField(payload["brand"]),
		PickupAvailable:   ToBool(payload["pickupAvailable"]),
		ShippingAvailable: ToBool(payload["shippingAvailable"]),
		PickupNotes:       stringField(payload["pickupNotes"]),
	}
}

// ToBool coerces a loosely-typed value to a boolean. Booleans pass through,
// numbers are false iff zero, and recognized truthy/falsy strings are matched
// case-insensitively. Everything else is false.
func ToBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "true", "yes", "y":
			return true
		}
		return false
	default:
		return false
	}
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

// priceField coerces the price to numeric text. Falsy values (null, empty
// string, zero) become the empty string; numbers are formatted without a
// trailing decimal part when integral.
func priceField(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case float64:
		if p == 0 {
			return ""
		}
		return strconv.FormatFloat(p, 'f', -1, 64)
	case int:
		if p == 0 {
			return ""
		}
		return strconv.Itoa(p)
	case int64:
		if p == 0 {
			return ""
		}
		return strconv.FormatInt(p, 10)
	case bool:
		if !p {
			return ""
		}
		return "true"
	default:
		return ""
	}
}
