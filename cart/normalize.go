package cart

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field aliases, in resolution order. The backend has shipped product
// records under both Portuguese and English field names over time; the
// first present alias wins, so the order here must not change.
var (
	nameAliases     = []string{"nome", "name"}
	categoryAliases = []string{"categoria", "category"}
	priceAliases    = []string{"preco", "price"}
	promoAliases    = []string{"preco_promocional", "promo_price"}
	imageAliases    = []string{"imagens_urls", "images"}
)

// Placeholder name for records that arrive without one.
const defaultName = "Produto"

// Normalize maps a loosely shaped product record onto a fully populated
// line item. Missing or garbled fields fall back to defaults; this
// never fails, whatever shape the backend sends.
func Normalize(raw map[string]any) Item {
	return Item{
		ID:        idField(raw),
		Name:      firstString(raw, nameAliases, defaultName),
		Category:  firstString(raw, categoryAliases, ""),
		UnitPrice: resolvePrice(raw),
		Images:    firstStrings(raw, imageAliases),
		Quantity:  quantityField(raw),
	}
}

// idField copies the product identifier verbatim. Numeric ids from
// older catalog exports are rendered as their decimal string.
func idField(raw map[string]any) string {
	switch v := raw["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func firstString(raw map[string]any, aliases []string, fallback string) string {
	for _, key := range aliases {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func firstStrings(raw map[string]any, aliases []string) []string {
	for _, key := range aliases {
		switch v := raw[key].(type) {
		case []string:
			out := make([]string, len(v))
			copy(out, v)
			return out
		case []any:
			out := make([]string, 0, len(v))
			for _, elem := range v {
				if s, ok := elem.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return []string{}
}

// resolvePrice picks the unit price. The promotional price wins when
// the record marks it active, it parses to a positive amount, and it
// undercuts the standard price (or no standard price is present).
// Otherwise the standard price applies, with the promo value as a plain
// fallback when the standard price is absent. Negative amounts clamp
// to zero.
func resolvePrice(raw map[string]any) decimal.Decimal {
	standard, hasStandard := firstDecimal(raw, priceAliases)
	promo, hasPromo := firstDecimal(raw, promoAliases)

	promoActive, _ := raw["promo_active"].(bool)
	if promoActive && hasPromo && promo.IsPositive() &&
		(!hasStandard || promo.LessThan(standard)) {
		return promo
	}
	if hasStandard {
		return clampPrice(standard)
	}
	if hasPromo {
		return clampPrice(promo)
	}
	return decimal.Zero
}

func clampPrice(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func firstDecimal(raw map[string]any, aliases []string) (decimal.Decimal, bool) {
	for _, key := range aliases {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if d, ok := toDecimal(value); ok {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch n := value.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	return decimal.Decimal{}, false
}

// quantityField reads the requested quantity; anything but a positive
// integer means one.
func quantityField(raw map[string]any) int {
	switch v := raw["quantity"].(type) {
	case float64:
		if v >= 1 && v == math.Trunc(v) {
			return int(v)
		}
	case int:
		if v >= 1 {
			return v
		}
	}
	return 1
}
