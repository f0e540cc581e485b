package mapping

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fennwick/ledgerlens/internal/model"
)

// DefaultCategory is assigned when an item carries no recognizable category.
const DefaultCategory = "📦 Other"

// unknownLabel is the fallback for merchant and payment method.
const unknownLabel = "Unknown"

// MapItem converts one raw collection item into a canonical Expense. It is
// total: malformed or missing data degrades to defaults, never to an error.
func MapItem(item model.RawItem) model.Expense {
	bag := newPropertyBag(item.Properties)

	merchant := bag.stringField("merchant")
	if merchant == "" {
		merchant = item.Merchant
	}
	if merchant == "" {
		merchant = item.Title
	}
	if merchant == "" {
		merchant = unknownLabel
	}

	title := item.Title
	if title == "" {
		title = merchant
	}

	category := bag.stringField("category")
	if category == "" {
		category = DefaultCategory
	}

	paymentMethod := bag.stringField("paymentMethod")
	if paymentMethod == "" {
		paymentMethod = unknownLabel
	}

	subtotal := bag.numberField("subtotal")
	tax := bag.numberField("tax")
	total := bag.numberField("total")
	if total == 0 && subtotal != 0 {
		total = subtotal
	}

	return model.Expense{
		ID:            item.ID,
		Title:         title,
		Merchant:      merchant,
		Date:          bag.stringField("date"),
		Category:      category,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: paymentMethod,
		Summary:       bag.stringField("summary"),
		LoggedAt:      bag.stringField("loggedAt"),
	}
}

// stringField resolves a canonical field to its string representation, or ""
// when no alias matches or the value cannot be rendered as text.
func (b propertyBag) stringField(field string) string {
	value, ok := b.resolve(field)
	if !ok {
		return ""
	}

	if list, isList := value.([]any); isList {
		parts := make([]string, 0, len(list))
		for _, entry := range list {
			if s := stringValue(entry); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}

	return stringValue(value)
}

// numberField resolves a canonical field to a non-negative amount. Native
// numbers pass through; strings are sanitized and parsed as decimals;
// anything unparsable yields 0.
func (b propertyBag) numberField(field string) float64 {
	value, ok := b.resolve(field)
	if !ok {
		return 0
	}

	switch n := value.(type) {
	case float64:
		return clampAmount(n)
	case int:
		return clampAmount(float64(n))
	case int64:
		return clampAmount(float64(n))
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return clampAmount(f)
		}
		return 0
	}

	raw := stringValue(value)
	if raw == "" {
		return 0
	}

	d, err := decimal.NewFromString(sanitizeAmount(raw))
	if err != nil {
		return 0
	}
	return clampAmount(d.InexactFloat64())
}

// stringValue renders a single raw value as text. Objects are represented by
// their title, name or value sub-field, in that order.
func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case map[string]any:
		for _, key := range []string{"title", "name", "value"} {
			if s, ok := v[key].(string); ok {
				return s
			}
		}
	}
	return ""
}

// sanitizeAmount strips currency symbols, grouping separators and other
// noise, keeping only digits, the decimal point and the sign.
func sanitizeAmount(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// clampAmount enforces the non-negative amount invariant.
func clampAmount(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
