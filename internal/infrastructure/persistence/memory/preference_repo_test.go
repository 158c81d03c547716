package memory

import (
	"context"
	"testing"

	"github.com/bnema/colorpref/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository()

	_, err := repo.Get(ctx, "theme")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Set(ctx, "theme", "light"))

	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}
