package operation_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	expected := map[operation.Status]string{
		operation.Created:   "CREATED",
		operation.AtOrigin:  "AT_ORIGIN",
		operation.Loaded:    "LOADED",
		operation.InTransit: "IN_TRANSIT",
		operation.AtHub:     "AT_HUB",
		operation.Unloaded:  "UNLOADED",
		operation.Completed: "COMPLETED",
		operation.Canceled:  "CANCELED",
		operation.Unknown:   "UNKNOWN",
	}

	for status, name := range expected {
		assert.Equal(t, name, status.String())
	}
	assert.Equal(t, "UNKNOWN", operation.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every lifecycle status", func(t *testing.T) {
		for _, status := range operation.AllStatuses() {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		for _, status := range []operation.Status{operation.Unknown, -1, 9, 100} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range operation.AllStatuses() {
		want := status == operation.Completed || status == operation.Canceled
		assert.Equal(t, want, status.IsTerminal(), status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status", func(t *testing.T) {
		for _, status := range operation.AllStatuses() {
			parsed, err := operation.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "created", "DELIVERED"} {
			_, err := operation.ParseStatus(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}
