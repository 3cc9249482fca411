package store

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Query bounds a filtered collection scan.
type Query struct {
	// Filter selects matching documents. Nil matches everything.
	Filter *Filter

	// Skip is the number of matching documents to pass over before
	// collecting results. Negative values are treated as zero.
	Skip int

	// Limit is the maximum number of documents to return (<= 0 = no bound).
	Limit int
}

// Filter is a predicate over string document attributes, rendered as a
// DynamoDB filter expression.
type Filter struct {
	conds []condition
}

type condition struct {
	field    string
	value    string
	contains bool
}

// Eq matches documents whose field equals value exactly.
func Eq(field, value string) *Filter {
	return &Filter{conds: []condition{{field: field, value: value}}}
}

// AnyContains matches documents where at least one of the fields contains
// value as a substring.
func AnyContains(value string, fields ...string) *Filter {
	f := &Filter{conds: make([]condition, 0, len(fields))}
	for _, field := range fields {
		f.conds = append(f.conds, condition{field: field, value: value, contains: true})
	}
	return f
}

// expression renders the filter with placeholder attribute names and values.
func (f *Filter) expression() (string, map[string]string, map[string]types.AttributeValue) {
	names := make(map[string]string, len(f.conds))
	values := make(map[string]types.AttributeValue, len(f.conds))
	clauses := make([]string, 0, len(f.conds))

	for i, c := range f.conds {
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = c.field
		values[valueKey] = &types.AttributeValueMemberS{Value: c.value}
		if c.contains {
			clauses = append(clauses, fmt.Sprintf("contains(%s, %s)", nameKey, valueKey))
		} else {
			clauses = append(clauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
		}
	}

	return strings.Join(clauses, " OR "), names, values
}
