package xmlutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navdb-service/pkg/logger"
)

func parseFragment(t *testing.T, doc string) *Element {
	t.Helper()
	el, err := Parse([]byte(doc))
	require.NoError(t, err)
	return el
}

func TestText_MissingAndEmpty(t *testing.T) {
	x := NewFieldExtractor(logger.NewNop(), false)
	el := parseFragment(t, "<E><NAME> Kennedy Intl </NAME><EMPTY></EMPTY></E>")

	name := x.Text(el, "NAME")
	require.NotNil(t, name)
	assert.Equal(t, "Kennedy Intl", *name)

	assert.Nil(t, x.Text(el, "EMPTY"))
	assert.Nil(t, x.Text(el, "ABSENT"))
}

func TestNumeric_LenientDegradesToNil(t *testing.T) {
	x := NewFieldExtractor(logger.NewNop(), false)
	el := parseFragment(t, "<E><ELEVATION>abc</ELEVATION><FREQ>not-a-number</FREQ></E>")

	elevation, err := x.Int(el, "ELEVATION")
	assert.NoError(t, err)
	assert.Nil(t, elevation)

	freq, err := x.Float(el, "FREQ")
	assert.NoError(t, err)
	assert.Nil(t, freq)

	d, err := x.Decimal(el, "FREQ")
	assert.NoError(t, err)
	assert.False(t, d.Valid)
}

func TestNumeric_StrictReturnsInvalidFieldError(t *testing.T) {
	x := NewFieldExtractor(logger.NewNop(), true)
	el := parseFragment(t, "<E><ELEVATION>abc</ELEVATION></E>")

	_, err := x.Int(el, "ELEVATION")
	require.Error(t, err)
	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ELEVATION", invalid.Tag)
	assert.Equal(t, "abc", invalid.Value)
}

func TestNumeric_ValidValues(t *testing.T) {
	x := NewFieldExtractor(logger.NewNop(), true)
	el := parseFragment(t, "<E><ELEVATION>13</ELEVATION><LAT>40.639751</LAT></E>")

	elevation, err := x.Int(el, "ELEVATION")
	require.NoError(t, err)
	require.NotNil(t, elevation)
	assert.Equal(t, 13, *elevation)

	lat, err := x.Decimal(el, "LAT")
	require.NoError(t, err)
	require.True(t, lat.Valid)
	assert.True(t, lat.Decimal.Equal(decimal.RequireFromString("40.639751")))
}

func TestNumeric_MissingIsNilInStrictMode(t *testing.T) {
	// Strictness applies to coercion only; absence is always allowed.
	x := NewFieldExtractor(logger.NewNop(), true)
	el := parseFragment(t, "<E/>")

	v, err := x.Int(el, "ELEVATION")
	assert.NoError(t, err)
	assert.Nil(t, v)
}
