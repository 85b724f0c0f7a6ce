package operation_test

import (
	"testing"

	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTransitionTable_Allowed(t *testing.T) {
	table := operation.DefaultTransitionTable()

	want := map[operation.Status][]operation.Status{
		operation.Created:   {operation.AtOrigin, operation.Canceled},
		operation.AtOrigin:  {operation.Loaded, operation.Canceled},
		operation.Loaded:    {operation.InTransit, operation.Canceled},
		operation.InTransit: {operation.AtHub, operation.Unloaded, operation.Canceled},
		operation.AtHub:     {operation.InTransit, operation.Unloaded, operation.Canceled},
		operation.Unloaded:  {operation.Completed, operation.Canceled},
		operation.Completed: nil,
		operation.Canceled:  nil,
	}

	got := make(map[operation.Status][]operation.Status, len(want))
	for _, from := range operation.AllStatuses() {
		if allowed := table.Allowed(from); len(allowed) > 0 {
			got[from] = allowed
		} else {
			got[from] = nil
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transition table mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultTransitionTable_CancelReachableFromEveryNonTerminal(t *testing.T) {
	table := operation.DefaultTransitionTable()

	for _, from := range operation.AllStatuses() {
		assert.Equal(t, !from.IsTerminal(), table.Allows(from, operation.Canceled), from.String())
	}
}

func TestTransitionTable_IsImmutable(t *testing.T) {
	t.Run("should copy the constructor input", func(t *testing.T) {
		edges := map[operation.Status][]operation.Status{
			operation.Created: {operation.Canceled},
		}
		table, err := operation.NewTransitionTable(edges)
		require.NoError(t, err)

		edges[operation.Created][0] = operation.Completed
		edges[operation.Loaded] = []operation.Status{operation.Canceled}

		assert.True(t, table.Allows(operation.Created, operation.Canceled))
		assert.False(t, table.Allows(operation.Created, operation.Completed))
		assert.False(t, table.Allows(operation.Loaded, operation.Canceled))
	})

	t.Run("should hand out copies", func(t *testing.T) {
		table := operation.DefaultTransitionTable()

		allowed := table.Allowed(operation.Created)
		allowed[0] = operation.Completed

		assert.False(t, table.Allows(operation.Created, operation.Completed))
	})
}

func TestNewTransitionTable_Rejects(t *testing.T) {
	t.Run("invalid statuses", func(t *testing.T) {
		_, err := operation.NewTransitionTable(map[operation.Status][]operation.Status{
			operation.Unknown: {operation.Created},
			operation.Created: {operation.Status(42)},
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("self loops", func(t *testing.T) {
		_, err := operation.NewTransitionTable(map[operation.Status][]operation.Status{
			operation.AtHub: {operation.AtHub},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lists itself")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := operation.NewInvalidTransitionError(operation.AtOrigin, operation.Completed)

	require.ErrorIs(t, err, operation.ErrInvalidTransition)
	assert.Equal(t, "invalid status transition: AT_ORIGIN -> COMPLETED", err.Error())
	assert.Equal(t, operation.AtOrigin, err.From)
	assert.Equal(t, operation.Completed, err.To)
}
