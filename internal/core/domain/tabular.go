package domain

import (
	"strconv"
	"strings"
)

// Value is a single scalar cell in a tabular result. Concrete types are
// string (text), int64 (integer), Decimal (fixed-point numeric) and nil
// (absent value).
type Value any

// Decimal is a fixed-point numeric value carried as its exact textual
// rendering, e.g. "1063" or "31098.000000". Arithmetic never happens on
// these values; they only flow from the store into formatted answers.
type Decimal string

// IsZero reports whether the decimal represents a numeric zero.
func (d Decimal) IsZero() bool {
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return false
	}
	return f == 0
}

// Row is one ordered row of scalar values.
type Row []Value

// TabularResult is the row/column data returned by executing a structured
// query. The zero value is an empty result.
type TabularResult struct {
	Rows []Row
}

// IsNoData reports whether the result carries no matching data: either no
// rows at all, or a single row whose sole value is null or numeric zero.
// Both shapes must be treated identically by answer formatting.
func (t TabularResult) IsNoData() bool {
	if len(t.Rows) == 0 {
		return true
	}
	if len(t.Rows) != 1 || len(t.Rows[0]) != 1 {
		return false
	}
	switch v := t.Rows[0][0].(type) {
	case nil:
		return true
	case int64:
		return v == 0
	case Decimal:
		return v.IsZero()
	case string:
		return v == ""
	default:
		return false
	}
}

// String renders the result in the parenthesized-row convention the answer
// formatter is defined against: rows are comma-separated tuples inside
// square brackets, text values are single-quoted and fixed-point values are
// wrapped in a Decimal marker, e.g. [('Nike', Decimal('1063'))]. Single-value
// rows keep a trailing comma, e.g. [('Red',)].
func (t TabularResult) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, row := range t.Rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderValue(v))
		}
		if len(row) == 1 {
			b.WriteString(",")
		}
		b.WriteString(")")
	}
	b.WriteString("]")
	return b.String()
}

func renderValue(v Value) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return "'" + val + "'"
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case Decimal:
		return "Decimal('" + string(val) + "')"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return "None"
	}
}
