package model

import "strings"

// IntentCategory is the closed set of routes a query can take.
type IntentCategory string

const (
	IntentRefundRequest    IntentCategory = "REFUND_REQUEST"
	IntentTechnicalSupport IntentCategory = "TECHNICAL_SUPPORT"
	IntentGeneralChitChat  IntentCategory = "GENERAL_CHIT_CHAT"
)

// AllCategories returns every category, in declaration order.
func AllCategories() []IntentCategory {
	return []IntentCategory{IntentRefundRequest, IntentTechnicalSupport, IntentGeneralChitChat}
}

// Valid reports whether c is one of the declared categories.
func (c IntentCategory) Valid() bool {
	switch c {
	case IntentRefundRequest, IntentTechnicalSupport, IntentGeneralChitChat:
		return true
	}
	return false
}

func (c IntentCategory) String() string {
	return string(c)
}

// ParseIntentCategory matches label against the declared categories after
// trimming whitespace, ignoring case. Anything else is not a category.
func ParseIntentCategory(label string) (IntentCategory, bool) {
	c := IntentCategory(strings.ToUpper(strings.TrimSpace(label)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}
