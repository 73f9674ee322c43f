package message

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
)

// NullText is how an absent value is displayed.
const NullText = "null"

// Representation turns values into the text shown in failure messages.
type Representation interface {
	Format(v any) string
}

// StandardRepresentation is the default Representation.
//
// Values render in the same textual form their parser accepts, so a value shown in a message
// can be pasted back as a string argument.
type StandardRepresentation struct {
	// MaxLength truncates a formatted value when positive.
	MaxLength int
}

// Standard is the representation used when none is configured.
var Standard Representation = StandardRepresentation{}

// Format renders v, truncated to MaxLength when it is set.
func (r StandardRepresentation) Format(v any) string {
	return r.truncate(r.format(v))
}

func (r StandardRepresentation) truncate(s string) string {
	if r.MaxLength <= 0 || len(s) <= r.MaxLength {
		return s
	}
	return s[:r.MaxLength] + "... (truncated " + strconv.Itoa(len(s)-r.MaxLength) + " chars)"
}

func (r StandardRepresentation) format(v any) string {
	if IsNil(v) {
		return NullText
	}

	switch value := v.(type) {
	case Literal:
		return string(value)
	case string:
		return strconv.Quote(value)
	case time.Time:
		return value.Format(time.RFC3339Nano)
	case error:
		return value.Error()
	case fmt.Stringer:
		return value.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprint(value)
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return r.formatSequence(rv)
	case reflect.Map:
		return r.formatMap(rv)
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return composite(v)
		}
		return r.format(rv.Elem().Interface())
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
	return composite(v)
}

// composite renders structs and other composites in Go syntax.
func composite(v any) string {
	return fmt.Sprintf("%# v", pretty.Formatter(v))
}

func (r StandardRepresentation) formatSequence(rv reflect.Value) string {
	elems := make([]string, rv.Len())
	for i := range elems {
		elems[i] = r.format(rv.Index(i).Interface())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// formatMap sorts entries by their formatted key, map iteration order is random.
func (r StandardRepresentation) formatMap(rv reflect.Value) string {
	entries := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, r.format(iter.Key().Interface())+"="+r.format(iter.Value().Interface()))
	}
	sort.Strings(entries)
	return "{" + strings.Join(entries, ", ") + "}"
}

// Literal is inserted into a message verbatim, without quoting.
type Literal string

// IsNil reports whether v is nil, including typed nil pointers, maps, slices, channels,
// functions and interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
