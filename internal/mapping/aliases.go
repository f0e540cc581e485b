// Package mapping converts raw Craft collection items into canonical
// Expense records. Collections in the wild name their columns however they
// like ("Store", "payment_method", "Total Amount"), so field resolution goes
// through an alias table with normalized, punctuation-insensitive keys.
package mapping

import "sort"

// propertyAliases lists the accepted spellings for each canonical field,
// in resolution priority order.
var propertyAliases = map[string][]string{
	"merchant":      {"merchant", "store", "vendor", "payee", "shop", "place", "company"},
	"date":          {"date", "transactiondate", "purchasedate", "spenton", "spentdate", "expensedate"},
	"category":      {"category", "type", "group", "expensecategory"},
	"subtotal":      {"subtotal", "pretax", "beforetax", "net", "amountbeforetax"},
	"tax":           {"tax", "vat", "gst"},
	"total":         {"total", "amount", "cost", "spent", "price", "sum", "totalamount", "amounttotal"},
	"paymentMethod": {"paymentmethod", "payment", "paidwith", "method", "card", "paymenttype"},
	"summary":       {"summary", "note", "notes", "description", "memo", "details"},
	"loggedAt":      {"loggedat", "createdat", "logtime", "timestamp"},
}

// propertyBag is a raw property map indexed by normalized key, built once
// per item so every field lookup is a cheap map access.
type propertyBag map[string]any

// newPropertyBag normalizes all raw keys up front. Raw keys are visited in
// sorted order and the first writer wins, so two raw keys that collapse to
// the same normalized key resolve deterministically.
func newPropertyBag(properties map[string]any) propertyBag {
	bag := make(propertyBag, len(properties))

	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		nk := normalizeKey(k)
		if _, exists := bag[nk]; !exists {
			bag[nk] = properties[k]
		}
	}

	return bag
}

// resolve returns the raw value stored under the first matching alias for
// the given canonical field. The second return is false when no alias
// matches; that is an expected outcome, not an error.
func (b propertyBag) resolve(field string) (any, bool) {
	for _, alias := range propertyAliases[field] {
		if value, ok := b[normalizeKey(alias)]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// normalizeKey lowercases and strips everything that is not a letter or
// digit, so "Payment Method", "payment_method" and "paymentMethod" all
// produce the same lookup key.
func normalizeKey(key string) string {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	return string(out)
}
