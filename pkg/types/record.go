package types

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure"
)

// equalRecords compares two records field by field. An absent field only
// equals another absent field.
func equalRecords[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b)
}

// hashRecord hashes the fields of v. Timestamps are hashed in UTC so that
// records Equal reports as equal hash the same.
func hashRecord[T any](v *T) uint64 {
	if v == nil {
		return 0
	}
	c := *v
	utcTimestamps(reflect.ValueOf(&c).Elem())
	// Records hold no channels or funcs, the only kinds hashstructure rejects.
	h, _ := hashstructure.Hash(c, nil)
	return h
}

// utcTimestamps points every *time.Time field of the struct rv at a UTC copy.
// The original times are left untouched.
func utcTimestamps(rv reflect.Value) {
	if rv.Kind() != reflect.Struct {
		return
	}
	timePtr := reflect.TypeOf((*time.Time)(nil))
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Type() != timePtr || f.IsNil() || !f.CanSet() {
			continue
		}
		t := f.Interface().(*time.Time).UTC()
		f.Set(reflect.ValueOf(&t))
	}
}

// fieldWriter renders the present fields of a record as {name: value,...}.
type fieldWriter struct {
	parts []string
}

func newFieldWriter() *fieldWriter {
	return &fieldWriter{}
}

func (w *fieldWriter) add(name string, value any) *fieldWriter {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Invalid:
		return w
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return w
		}
	}
	w.parts = append(w.parts, name+": "+formatValue(v))
	return w
}

func (w *fieldWriter) String() string {
	return "{" + strings.Join(w.parts, ",") + "}"
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return "null"
		}
		if _, isTime := v.Interface().(*time.Time); !isTime {
			if s, ok := v.Interface().(fmt.Stringer); ok {
				return s.String()
			}
		}
		return formatValue(v.Elem())
	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return t.UTC().Format(time.RFC3339)
		}
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		if s, ok := p.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%+v", v.Interface())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprintf("<%d bytes>", v.Len())
		}
		items := make([]string, v.Len())
		for i := range items {
			items[i] = formatValue(v.Index(i))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = k.String() + "=" + formatValue(v.MapIndex(k))
		}
		return "{" + strings.Join(items, ", ") + "}"
	default:
		return fmt.Sprint(v.Interface())
	}
}
