package xmlutil

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"navdb-service/pkg/logger"
)

// InvalidFieldError reports a field whose text failed numeric coercion.
// It only escapes the extractor in strict mode.
type InvalidFieldError struct {
	Tag   string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value %q for tag '%s'", e.Value, e.Tag)
}

// FieldExtractor reads typed fields out of XML elements. Missing tags yield
// nil values. In lenient mode (the default) a non-numeric value is logged as
// a warning and degrades to nil; in strict mode it is returned as an
// InvalidFieldError.
type FieldExtractor struct {
	strict bool
	log    logger.Logger
}

// NewFieldExtractor creates a field extractor with the given coercion policy.
func NewFieldExtractor(log logger.Logger, strict bool) *FieldExtractor {
	return &FieldExtractor{
		strict: strict,
		log:    log,
	}
}

// Text extracts trimmed text from a child tag, nil if missing or empty.
func (x *FieldExtractor) Text(parent *Element, path string) *string {
	el := parent.Find(path)
	if el == nil {
		return nil
	}
	text := el.Text()
	if text == "" {
		return nil
	}
	return &text
}

// Float extracts a float from a child tag, nil if missing.
func (x *FieldExtractor) Float(parent *Element, path string) (*float64, error) {
	text := x.Text(parent, path)
	if text == nil {
		return nil, nil
	}
	value, err := strconv.ParseFloat(*text, 64)
	if err != nil {
		return nil, x.coercionFailure(path, *text)
	}
	return &value, nil
}

// Int extracts an integer from a child tag, nil if missing.
func (x *FieldExtractor) Int(parent *Element, path string) (*int, error) {
	text := x.Text(parent, path)
	if text == nil {
		return nil, nil
	}
	value, err := strconv.Atoi(*text)
	if err != nil {
		return nil, x.coercionFailure(path, *text)
	}
	return &value, nil
}

// Decimal extracts a fixed-precision decimal from a child tag, invalid
// (SQL NULL) if missing. Used for coordinates and frequencies where float
// rounding is unacceptable.
func (x *FieldExtractor) Decimal(parent *Element, path string) (decimal.NullDecimal, error) {
	text := x.Text(parent, path)
	if text == nil {
		return decimal.NullDecimal{}, nil
	}
	value, err := decimal.NewFromString(*text)
	if err != nil {
		return decimal.NullDecimal{}, x.coercionFailure(path, *text)
	}
	return decimal.NullDecimal{Decimal: value, Valid: true}, nil
}

func (x *FieldExtractor) coercionFailure(tag, value string) error {
	if x.strict {
		return &InvalidFieldError{Tag: tag, Value: value}
	}
	x.log.Warn("Invalid numeric value for tag", "tag", tag, "value", value)
	return nil
}
