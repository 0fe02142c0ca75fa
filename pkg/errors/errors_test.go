package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("listings.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "listings.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: listings.yaml:7: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("fields[1].key", "duplicate field key \"price\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "fields[1].key", validationErr.Field)
	require.Contains(t, err.Error(), "duplicate field key")

	bare := NewValidationError("", "definition is nil", nil)
	require.Equal(t, "validation error: definition is nil", bare.Error())
}

func TestValidationErrorUnwrapsRowError(t *testing.T) {
	t.Parallel()

	rowErr := NewRowError(3, "xzvxzcv", "duplicate row key")
	err := NewValidationError("data[3].key", "invalid row", rowErr)

	var target *RowError
	require.ErrorAs(t, err, &target)
	require.Equal(t, 3, target.Index)
	require.Equal(t, "row 3 (xzvxzcv): duplicate row key", target.Error())
	require.Equal(t, "row 0: missing key", NewRowError(0, "", "missing key").Error())
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var rowErr *RowError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, rowErr.Error())
}
