// Package output serializes payload documents and writes artifacts.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
)

// Indentation used by the bar chart and heatmap documents.
const (
	IndentBarChart = "    "
	IndentHeatmap  = "  "
)

// SerializationError reports a value that cannot be written as JSON.
type SerializationError struct {
	// Field is the JSON path of the offending value, e.g. $.data["HOMO"].y_values[3].
	Field string
	Value float64
	Err   error
}

func (e *SerializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot serialize JSON: %v", e.Err)
	}
	return fmt.Sprintf("cannot serialize JSON: non-finite value %v at %s", e.Value, e.Field)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ToJSON serializes v with the given indent (compact when empty).
// Struct fields keep declaration order and map keys are sorted, so the
// same input always yields the same bytes. Non-finite numbers fail.
func ToJSON(v interface{}, indent string) ([]byte, error) {
	if err := CheckFinite(v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}

var numberType = reflect.TypeOf(frame.Number{})

// CheckFinite walks v the way encoding/json would and returns a
// SerializationError naming the first NaN or infinite number.
func CheckFinite(v interface{}) error {
	return checkValue(reflect.ValueOf(v), "$")
}

func checkValue(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return checkValue(v.Elem(), path)
	case reflect.Float32, reflect.Float64:
		return checkFloat(v.Float(), path)
	case reflect.Struct:
		if v.Type() == numberType {
			n := v.Interface().(frame.Number)
			if !n.Valid {
				return nil
			}
			return checkFloat(n.Value, path)
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := fieldName(sf)
			if name == "-" {
				continue
			}
			if err := checkValue(v.Field(i), path+"."+name); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			if err := checkValue(v.MapIndex(k), fmt.Sprintf("%s[%q]", path, fmt.Sprint(k.Interface()))); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFloat(f float64, path string) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &SerializationError{Field: path, Value: f}
	}
	return nil
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}
