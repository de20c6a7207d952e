package noko

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrorKind classifies a single parameter validation failure.
type ErrorKind string

const (
	BadDateFormat           ErrorKind = "bad_date_format"
	BadTimestampFormat      ErrorKind = "bad_timestamp_format"
	InvalidEnumValue        ErrorKind = "invalid_enum_value"
	BadIDFormat             ErrorKind = "bad_id_format"
	InvalidBillingIncrement ErrorKind = "invalid_billing_increment"
	MissingField            ErrorKind = "missing_field"
)

// FieldError describes one invalid parameter.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
	Allowed []string // set for InvalidEnumValue
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every failing field in a parameter set, so
// the caller sees all problems in one pass. No request is sent when a
// parameter set fails to validate.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid parameters: " + strings.Join(msgs, "; ")
}

// fieldErrors collects failures during Normalize.
type fieldErrors struct {
	fields []FieldError
}

func (f *fieldErrors) add(field string, kind ErrorKind, format string, args ...any) {
	f.fields = append(f.fields, FieldError{Field: field, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (f *fieldErrors) addEnum(field string, allowed []string, got any) {
	f.fields = append(f.fields, FieldError{
		Field:   field,
		Kind:    InvalidEnumValue,
		Message: fmt.Sprintf("%v is not one of: %s", got, strings.Join(allowed, ", ")),
		Allowed: allowed,
	})
}

// err returns the aggregated *ValidationError, or nil when everything
// validated.
func (f *fieldErrors) err() error {
	if len(f.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: f.fields}
}

// formatDate validates string dates against YYYY-MM-DD and formats time
// values. A string failing the format check is a validation failure, not
// a passthrough.
func formatDate(v any, field string, errs *fieldErrors) any {
	if s, ok := v.(string); ok {
		if _, err := time.Parse(dateLayout, s); err != nil {
			errs.add(field, BadDateFormat, "%q is not a valid YYYY-MM-DD date", s)
			return nil
		}
		return s
	}
	return dateToWire(v)
}

// timestampLayouts are the string forms accepted for timestamp filters,
// after any trailing Z has been stripped.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
}

// formatTimestamp validates string timestamps and normalizes them to
// whole-second ISO 8601 with a trailing Z. Time values are formatted
// directly.
func formatTimestamp(v any, field string, errs *fieldErrors) any {
	s, ok := v.(string)
	if !ok {
		return timestampToWire(v)
	}
	trimmed := strings.TrimSuffix(s, "Z")
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return timestampToWire(t)
		}
	}
	errs.add(field, BadTimestampFormat, "%q is not a valid ISO 8601 timestamp", s)
	return nil
}

// checkEnum validates a non-empty string against a closed set.
func checkEnum(v string, field string, allowed []string, errs *fieldErrors) any {
	if v == "" {
		return nil
	}
	if !slices.Contains(allowed, v) {
		errs.addEnum(field, allowed, v)
		return nil
	}
	return v
}

// coerceID turns string IDs into integers. Integers and nil pass through.
func coerceID(v any, field string, errs *fieldErrors) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs.add(field, BadIDFormat, "%q is not an integer id", s)
		return nil
	}
	return n
}

// validBillingIncrements are the only increments Noko accepts.
var validBillingIncrements = []int{1, 5, 6, 10, 15, 20, 30, 60}

// checkBillingIncrement validates the increment when set. Zero means
// unset and is dropped from the wire payload.
func checkBillingIncrement(v int, field string, errs *fieldErrors) any {
	if v == 0 {
		return nil
	}
	if !slices.Contains(validBillingIncrements, v) {
		errs.add(field, InvalidBillingIncrement, "%d is not a valid billing increment (allowed: 1, 5, 6, 10, 15, 20, 30, 60)", v)
		return nil
	}
	return v
}

// requireSet records a MissingField error when a required flexible-typed
// field was left unset.
func requireSet(v any, field string, errs *fieldErrors) any {
	if v == nil {
		errs.add(field, MissingField, "required field not set")
	}
	return v
}

// requireString records a MissingField error when a required string field
// was left empty.
func requireString(v string, field string, errs *fieldErrors) string {
	if v == "" {
		errs.add(field, MissingField, "required field not set")
	}
	return v
}
