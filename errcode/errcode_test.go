package errcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	cause := errors.New("spi stalled")
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", EmptyGroup, EmptyGroup},
		{"wrapped", Wrap(DrawFailed, "display.full", cause), DrawFailed},
		{"foreign", cause, Error},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Of(tc.err))
		})
	}
}

func TestEUnwrapAndMessage(t *testing.T) {
	cause := errors.New("busy pin stuck")
	err := Wrap(DrawFailed, "display.label", cause)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "display.label: draw_failed: busy pin stuck", err.Error())

	err = New(EmptyGroup, "catalog", "group \"B\" has no items")
	assert.Equal(t, `catalog: empty_group: group "B" has no items`, err.Error())
}
