package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the locale-stable long form used for every date column.
const dateLayout = "Jan 02, 2006"

// currencyPrefix is the fixed display currency. Costs are stored as plain
// numbers; presentation is decided here and only here.
const currencyPrefix = "KES "

// parseLayouts are the date shapes accepted from raw values, tried in order.
var parseLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

// formatRule pairs a predicate on the column label with a value transform.
// The label is the single source of truth for presentation intent: the same
// number renders as currency under a "Cost" label and as a count under a
// "Quantity" label.
type formatRule struct {
	matches func(label string) bool
	apply   func(raw interface{}) (string, bool)
}

// Rule order is the precedence order: date wins over cost/price, cost/price
// wins over quantity. Exactly one transform is ever applied to a value.
var formatRules = []formatRule{
	{labelContains("date"), formatDate},
	{labelContainsAny("cost", "price"), formatCurrency},
	{labelContains("quantity"), formatQuantity},
}

// Format renders a raw field value for display under the given column label.
// Nil renders as the sentinel. If the first matching rule cannot transform
// the value (unparseable date, non-numeric cost) the raw value passes through
// unchanged; no further rule is tried.
func Format(label string, raw interface{}) string {
	if raw == nil {
		return Sentinel
	}
	for _, rule := range formatRules {
		if !rule.matches(label) {
			continue
		}
		if out, ok := rule.apply(raw); ok {
			return out
		}
		break
	}
	return rawString(raw)
}

func labelContains(substr string) func(string) bool {
	return func(label string) bool {
		return strings.Contains(strings.ToLower(label), substr)
	}
}

func labelContainsAny(substrs ...string) func(string) bool {
	return func(label string) bool {
		lower := strings.ToLower(label)
		for _, s := range substrs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
}

func formatDate(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v.Format(dateLayout), true
	case string:
		if v == Sentinel {
			return "", false
		}
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format(dateLayout), true
			}
		}
		return "", false
	default:
		return "", false
	}
}

func formatCurrency(raw interface{}) (string, bool) {
	n, ok := asFloat(raw)
	if !ok {
		return "", false
	}
	return currencyPrefix + groupThousands(math.Round(n)), true
}

func formatQuantity(raw interface{}) (string, bool) {
	n, ok := asFloat(raw)
	if !ok {
		return "", false
	}
	return groupThousands(math.Round(n)) + " units", true
}

func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// groupThousands renders a rounded float with comma-grouped digits,
// e.g. -1234567 -> "-1,234,567".
func groupThousands(n float64) string {
	s := strconv.FormatFloat(n, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

func rawString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(dateLayout)
	default:
		return fmt.Sprintf("%v", v)
	}
}
