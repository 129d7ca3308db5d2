package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("registry.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "registry.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: registry.yaml:12: mapping values are not allowed", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[2](Badge).default_variants.variant", "unknown variant \"huge\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[2](Badge).default_variants.variant", validationErr.Field)
	require.Contains(t, err.Error(), "unknown variant")
}

func TestConversionErrorIncludesStage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("merger unavailable")
	err := NewConversionError(StageMerge, "button", underlying)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, StageMerge, convErr.Stage)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "conversion error [merge] button: merger unavailable", err.Error())
}

func TestConversionErrorWithoutDetail(t *testing.T) {
	t.Parallel()

	err := NewConversionError(StageRender, "", ErrDepthExceeded)
	require.ErrorIs(t, err, ErrDepthExceeded)
	require.Equal(t, "conversion error [render]: maximum nesting depth exceeded", err.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var c *ConversionError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, c.Error())
	require.Nil(t, c.Unwrap())
}
