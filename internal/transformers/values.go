package transformers

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"homeinsight-listings/internal/models"
)

// asMap accepts the document shapes produced by the mongo driver and by
// encoding/json.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case primitive.M:
		return map[string]interface{}(m), true
	case models.StoredListing:
		return map[string]interface{}(m), true
	case primitive.D:
		out := make(map[string]interface{}, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

func asList(v interface{}) ([]interface{}, bool) {
	switch l := v.(type) {
	case []interface{}:
		return l, true
	case primitive.A:
		return []interface{}(l), true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is binary data, not a list
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// lookup resolves a dotted path such as "location.coordinates".
func lookup(m map[string]interface{}, key string) (interface{}, bool) {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		next, ok := asMap(current[k])
		if !ok {
			return nil, false
		}
		current = next
	}
	val, ok := current[keys[len(keys)-1]]
	return val, ok
}

// isPresent treats nil, empty strings, zero numbers and false as absent.
// Lists and documents are present even when empty.
func isPresent(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case primitive.Null, primitive.Undefined:
		return false
	}
	if f, ok := numeric(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// numeric converts Go and BSON number kinds; strings are not considered here.
func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func toNumber(v interface{}) (float64, bool) {
	if f, ok := numeric(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case primitive.ObjectID:
		return s.Hex()
	}
	if f, ok := numeric(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case primitive.DateTime:
		return t.Time(), true
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0), true
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	}
	// bare numbers are epoch milliseconds
	if f, ok := numeric(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return time.UnixMilli(int64(f)), true
	}
	return time.Time{}, false
}

func firstPresent(m map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := lookup(m, k); ok && isPresent(v) {
			return v, true
		}
	}
	return nil, false
}

// firstNumber coerces the first present alias; a non-numeric value yields 0
// rather than falling through to later aliases.
func firstNumber(m map[string]interface{}, keys ...string) float64 {
	v, ok := firstPresent(m, keys...)
	if !ok {
		return 0
	}
	f, _ := toNumber(v)
	return f
}

func firstString(m map[string]interface{}, def string, keys ...string) string {
	v, ok := firstPresent(m, keys...)
	if !ok {
		return def
	}
	return toString(v)
}

// listField never returns nil so the JSON contract always carries [].
func listField(m map[string]interface{}, key string) []interface{} {
	v, ok := lookup(m, key)
	if !ok || !isPresent(v) {
		return []interface{}{}
	}
	if l, ok := asList(v); ok {
		if l == nil {
			return []interface{}{}
		}
		return l
	}
	return []interface{}{v}
}
