package rest

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Request is implemented by every typed request descriptor in the catalog.
// Method/Path/Auth fully describe how the request is dispatched; the
// descriptor's own exported fields (tagged with `json:"..."`) describe its
// payload. For GET requests the payload serializes to a query string; for
// every other method it serializes to a JSON body. At most one of
// {query, body} is non-empty; a GET with no set fields has neither.
type Request interface {
	Method() string
	Path() string
	Auth() bool
}

// pathRequest is implemented by descriptors whose wire path is computed
// from an instance field (e.g. an order id substituted into "/orders/{}").
// Requests without path parameters fall back to Path().
type pathRequest interface {
	Request
	ResolvedPath() string
}

// resolvePath returns the instance-computed path if r implements
// pathRequest, else its static Path().
func resolvePath(r Request) string {
	if pr, ok := r.(pathRequest); ok {
		return pr.ResolvedPath()
	}
	return r.Path()
}

// encodeQuery renders req's exported fields as a URL query string with
// parameters sorted by key (url.Values.Encode). A field is omitted when it
// is conceptually absent: a nil pointer, an empty slice or array, or a
// zero-value string/number tagged `json:",omitempty"`. Non-pointer fields
// without omitempty are always emitted, so GET requests drop unset optional
// filters while keeping required parameters such as Resolution.
func encodeQuery(req Request) string {
	v := reflect.ValueOf(req)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	t := v.Type()
	values := url.Values{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" { // unexported
			continue
		}
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts := splitTag(tag)
		if name == "" {
			name = field.Name
		}

		fv := v.Field(i)
		omitEmpty := strings.Contains(opts, "omitempty")

		switch fv.Kind() {
		case reflect.Ptr:
			if fv.IsNil() {
				continue
			}
			values.Set(name, formatValue(fv.Elem()))
		case reflect.String:
			if omitEmpty && fv.String() == "" {
				continue
			}
			values.Set(name, fv.String())
		case reflect.Slice, reflect.Array:
			if fv.Len() == 0 {
				continue
			}
			values.Set(name, formatValue(fv))
		default:
			if omitEmpty && fv.IsZero() {
				continue
			}
			values.Set(name, formatValue(fv))
		}
	}

	return values.Encode()
}

func splitTag(tag string) (name string, opts string) {
	parts := strings.SplitN(tag, ",", 2)
	name = parts[0]
	if len(parts) > 1 {
		opts = parts[1]
	}
	return
}

// stringer is satisfied by decimal.Decimal and similar value types whose
// canonical query representation is their String() form.
type stringer interface{ String() string }

func formatValue(v reflect.Value) string {
	if v.CanInterface() {
		if s, ok := v.Interface().(stringer); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%v", v.Float())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
