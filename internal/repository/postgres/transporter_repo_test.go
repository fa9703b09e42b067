package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omsbridge/internal/repository/postgres"
)

// An empty transporter id is resolved without a database round trip.
func TestTransporterRepo_EmptyIDShortCircuits(t *testing.T) {
	repo := postgres.NewTransporterRepo(nil)

	ok, err := repo.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
