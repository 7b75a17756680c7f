// Package transfer imports and exports trip configurations as files.
//
// Two formats are supported. CSV is the vertical "key,value" layout written
// by earlier versions of the tool: one field per line, the value quoted when
// it contains a comma, quote or newline. JSON is a flat object with the same
// keys. Both decode into a Patch, which only touches the keys it contains.
package transfer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkordes/travel-approval/internal/domain"
)

// Format names a file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name (case-insensitive, empty means CSV)
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", domain.ErrValidation, s)
}

// ContentType is the MIME type for files in format f.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// field is one exported configuration key and its struct position.
type field struct {
	key    string
	index  int
	isBool bool
}

// fields lists every configuration key in declaration order, which is also
// the line order of an exported CSV file.
var fields, fieldsByKey = indexFields()

func indexFields() ([]field, map[string]field) {
	typ := reflect.TypeOf(domain.TripConfiguration{})
	list := make([]field, 0, typ.NumField())
	byKey := make(map[string]field, typ.NumField())
	for i := range typ.NumField() {
		sf := typ.Field(i)
		key, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		f := field{key: key, index: i, isBool: sf.Type.Kind() == reflect.Bool}
		list = append(list, f)
		byKey[key] = f
	}
	return list, byKey
}

// Keys returns the configuration keys in export order.
func Keys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.key
	}
	return out
}

// Patch is a partial configuration read from a file: known keys mapped to
// their raw text. Booleans are kept as "true"/"false" and converted when the
// patch is applied.
type Patch map[string]string

// Apply returns base with every key in p overwritten. Keys absent from p keep
// their base value. base itself is never modified; on error the returned
// configuration is the zero value and the caller should keep base.
func (p Patch) Apply(base domain.TripConfiguration) (domain.TripConfiguration, error) {
	out := base
	v := reflect.ValueOf(&out).Elem()
	for key, raw := range p {
		f, ok := fieldsByKey[key]
		if !ok {
			continue
		}
		if f.isBool {
			switch raw {
			case "true", "false":
				v.Field(f.index).SetBool(raw == "true")
			default:
				return domain.TripConfiguration{}, fmt.Errorf("%w: %s: %q is not true or false", domain.ErrValidation, key, raw)
			}
			continue
		}
		v.Field(f.index).SetString(raw)
	}
	return out, nil
}

// Decode reads a file in format f. Unknown keys are dropped. A malformed file
// is reported as domain.ErrValidation.
func Decode(r io.Reader, f Format) (Patch, error) {
	switch f {
	case FormatJSON:
		return decodeJSON(r)
	case FormatCSV:
		return decodeCSV(r)
	}
	return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrValidation, f)
}

// Import decodes r and applies it to base. On any error base is returned
// unchanged together with the error.
func Import(base domain.TripConfiguration, r io.Reader, f Format) (domain.TripConfiguration, error) {
	patch, err := Decode(r, f)
	if err != nil {
		return base, err
	}
	merged, err := patch.Apply(base)
	if err != nil {
		return base, err
	}
	return merged, nil
}

// Encode writes cfg to w in format f.
func Encode(w io.Writer, cfg domain.TripConfiguration, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("transfer.Encode: json: %w", err)
		}
		return nil
	case FormatCSV:
		return encodeCSV(w, cfg)
	}
	return fmt.Errorf("%w: unsupported format %q", domain.ErrValidation, f)
}

func encodeCSV(w io.Writer, cfg domain.TripConfiguration) error {
	cw := csv.NewWriter(w)
	v := reflect.ValueOf(cfg)
	for _, f := range fields {
		var val string
		if f.isBool {
			val = strconv.FormatBool(v.Field(f.index).Bool())
		} else {
			val = v.Field(f.index).String()
		}
		if err := cw.Write([]string{f.key, val}); err != nil {
			return fmt.Errorf("transfer.Encode: csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("transfer.Encode: csv: %w", err)
	}
	return nil
}

func decodeCSV(r io.Reader) (Patch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	patch := Patch{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %s", domain.ErrValidation, err.Error())
		}
		if len(rec) < 2 {
			continue
		}
		key := strings.TrimSpace(rec[0])
		if _, ok := fieldsByKey[key]; !ok {
			continue
		}
		// Hand-edited files sometimes leave commas in a value unquoted.
		patch[key] = strings.TrimSpace(strings.Join(rec[1:], ","))
	}
	return patch, nil
}

func decodeJSON(r io.Reader) (Patch, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: json: %s", domain.ErrValidation, err.Error())
	}

	patch := Patch{}
	for key, val := range raw {
		if _, ok := fieldsByKey[key]; !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			patch[key] = v
		case bool:
			patch[key] = strconv.FormatBool(v)
		case json.Number:
			patch[key] = v.String()
		case nil:
			continue
		default:
			return nil, fmt.Errorf("%w: json: %s must be a string, number or boolean", domain.ErrValidation, key)
		}
	}
	return patch, nil
}
