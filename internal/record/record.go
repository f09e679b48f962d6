// Package record turns typed scenario results into flat, ordered key/value
// rows. Keys come from the json struct tags of the result type, so the same
// names appear in CSV headers, JSON exports and report tables.
package record

import (
	"reflect"
	"sort"
	"strings"
)

// Reserved keys added to every flattened row.
const (
	KeyVariant  = "variant"
	KeyCategory = "category"
)

// Field is one metric of a flattened row.
type Field struct {
	Key   string
	Value any
}

// Row is an ordered list of fields. Keys are unique within a row.
type Row []Field

// Get returns the value for key and whether it is present.
func (r Row) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Float returns the value for key as float64. Integer values are converted.
// Returns false when the key is missing or not numeric.
func (r Row) Float(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// String returns the value for key when it is a string.
func (r Row) String(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Keys returns the row's keys in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Flatten converts a result struct (or pointer to one) into a Row, then
// appends the variant and category tags. Exported fields without a json tag
// use their Go name; fields tagged "-" are skipped; anonymous struct fields
// are inlined. A later field with a key already present replaces the
// earlier value in place.
func Flatten(result any, variant, category string) Row {
	var row Row
	index := map[string]int{}

	put := func(key string, value any) {
		if i, ok := index[key]; ok {
			row[i].Value = value
			return
		}
		index[key] = len(row)
		row = append(row, Field{Key: key, Value: value})
	}

	if result != nil {
		flattenValue(reflect.ValueOf(result), put)
	}
	put(KeyVariant, variant)
	put(KeyCategory, category)
	return row
}

func flattenValue(v reflect.Value, put func(string, any)) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}

		name, skip := fieldName(sf)
		if skip {
			continue
		}

		fv := v.Field(i)
		if sf.Anonymous && name == "" {
			flattenValue(fv, put)
			continue
		}
		if name == "" {
			name = sf.Name
		}
		put(name, normalize(fv))
	}
}

// fieldName parses the json tag. An empty name with skip=false means "use
// the default": the Go name, or inline for anonymous fields.
func fieldName(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	return name, false
}

// normalize maps a field value onto the small set of types rows carry:
// int64, float64, string, bool, []string and []int64.
func normalize(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Slice, reflect.Array:
		switch v.Type().Elem().Kind() {
		case reflect.String:
			out := make([]string, v.Len())
			for i := range out {
				out[i] = v.Index(i).String()
			}
			return out
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out := make([]int64, v.Len())
			for i := range out {
				out[i] = v.Index(i).Int()
			}
			return out
		}
	}
	return v.Interface()
}

// UnionKeys returns the sorted union of keys across rows.
func UnionKeys(rows []Row) []string {
	seen := map[string]struct{}{}
	for _, r := range rows {
		for _, f := range r {
			seen[f.Key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
