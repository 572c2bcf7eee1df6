package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Values carries the optional query fields of a single call, keyed by the
// parameter name declared on the Endpoint.
type Values map[string]any

// QueryPair is one name/value entry of a query-argument set.
type QueryPair struct {
	Name  string
	Value string
}

// QueryArgs is an ordered query-argument set. Entries keep insertion order
// and only present values are ever added.
type QueryArgs struct {
	pairs []QueryPair
}

// NewQueryArgs creates an empty query-argument set.
func NewQueryArgs() *QueryArgs {
	return &QueryArgs{}
}

// Add appends name=value when value is present:
//   - strings and fmt.Stringer values when their text is non-empty
//   - integers when strictly positive
//   - booleans when true
//
// Nil values and pointers to absent values are skipped.
func (q *QueryArgs) Add(name string, value any) *QueryArgs {
	text, ok := presentValue(value)
	if ok {
		q.pairs = append(q.pairs, QueryPair{Name: name, Value: text})
	}

	return q
}

// AddString appends name=value when value is non-empty.
func (q *QueryArgs) AddString(name, value string) *QueryArgs {
	return q.Add(name, value)
}

// AddInt appends name=value when value is greater than zero.
func (q *QueryArgs) AddInt(name string, value int64) *QueryArgs {
	return q.Add(name, value)
}

// Len returns the number of entries.
func (q *QueryArgs) Len() int {
	return len(q.pairs)
}

// Pairs returns a copy of the entries in order.
func (q *QueryArgs) Pairs() []QueryPair {
	out := make([]QueryPair, len(q.pairs))
	copy(out, q.pairs)

	return out
}

// Encode form-encodes the entries in insertion order and joins them with "&".
func (q *QueryArgs) Encode() string {
	var builder strings.Builder

	for i, pair := range q.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

// Values converts the set to url.Values. Ordering is lost.
func (q *QueryArgs) Values() url.Values {
	values := make(url.Values, len(q.pairs))
	for _, pair := range q.pairs {
		values.Add(pair.Name, pair.Value)
	}

	return values
}

func presentValue(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, typed != ""
	case *string:
		if typed == nil {
			return "", false
		}

		return presentValue(*typed)
	case int:
		return positive(int64(typed))
	case int32:
		return positive(int64(typed))
	case int64:
		return positive(typed)
	case *int64:
		if typed == nil {
			return "", false
		}

		return positive(*typed)
	case uint:
		return unsignedPositive(uint64(typed))
	case uint32:
		return unsignedPositive(uint64(typed))
	case uint64:
		return unsignedPositive(typed)
	case bool:
		return strconv.FormatBool(typed), typed
	case fmt.Stringer:
		text := typed.String()

		return text, text != ""
	default:
		text := fmt.Sprint(typed)

		return text, text != ""
	}
}

func positive(value int64) (string, bool) {
	return strconv.FormatInt(value, 10), value > 0
}

func unsignedPositive(value uint64) (string, bool) {
	return strconv.FormatUint(value, 10), value > 0
}
