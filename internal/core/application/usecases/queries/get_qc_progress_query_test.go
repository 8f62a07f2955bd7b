package queries_test

import (
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQcProgressQuery_Valid(t *testing.T) {
	jobID := kernel.NewUUID()

	query, err := queries.NewGetQcProgressQuery(jobID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.JobID().IsEqual(jobID))
}

func TestNewGetQcProgressQuery_EmptyJobID(t *testing.T) {
	_, err := queries.NewGetQcProgressQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetQcProgressQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQcProgressQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQcProgressQueryIsNotConstructed)
}
