package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOperationQuery(t *testing.T) {
	tenantID, id := kernel.NewUUID(), kernel.NewUUID()

	query, err := queries.NewGetOperationQuery(tenantID, id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.TenantID().IsEqual(tenantID))
	assert.True(t, query.OperationID().IsEqual(id))

	_, err = queries.NewGetOperationQuery(kernel.UUID{}, id)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOperationQuery_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOperationQuery{}.Validate(), queries.ErrGetOperationQueryIsNotConstructed)
}

func TestNewListOperationsQuery(t *testing.T) {
	tenantID := kernel.NewUUID()
	inTransit := operation.InTransit
	unknown := operation.Unknown

	tests := []struct {
		name      string
		status    *operation.Status
		limit     int
		offset    int
		wantLimit int
		wantErr   error
	}{
		{name: "defaults", wantLimit: queries.DefaultPageSize},
		{name: "status filter", status: &inTransit, limit: 10, offset: 20, wantLimit: 10},
		{name: "max page", limit: queries.MaxPageSize, wantLimit: queries.MaxPageSize},
		{name: "page too large", limit: queries.MaxPageSize + 1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative limit", limit: -1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative offset", offset: -5, wantErr: errs.ErrValueIsOutOfRange},
		{name: "invalid status", status: &unknown, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewListOperationsQuery(tenantID, tt.status, tt.limit, tt.offset)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, query.Validate())
			assert.Equal(t, tt.wantLimit, query.Limit())
			assert.Equal(t, tt.offset, query.Offset())
			assert.Equal(t, tt.status, query.Status())
		})
	}
}

func TestNewListEntityMovementsQuery(t *testing.T) {
	tenantID, entityID := kernel.NewUUID(), kernel.NewUUID()

	query, err := queries.NewListEntityMovementsQuery(tenantID, movement.EntityProduct, entityID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, movement.EntityProduct, query.EntityType())

	_, err = queries.NewListEntityMovementsQuery(tenantID, movement.EntityUnknown, entityID)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, queries.ListEntityMovementsQuery{}.Validate(), queries.ErrListEntityMovementsQueryIsNotConstructed)
}
