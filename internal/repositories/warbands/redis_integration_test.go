//go:build integration

package warbands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weirdoworks/warband-bot/internal/entities"
	wberr "github.com/weirdoworks/warband-bot/internal/errors"
	"github.com/weirdoworks/warband-bot/internal/repositories/warbands"
	"github.com/weirdoworks/warband-bot/internal/testutils"
)

func TestRedisIntegration_FullLifecycle(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := warbands.NewRedis(client, nil)
	ctx := context.Background()

	wb := testutils.CreateTestWarband("wb-int-1", "owner-int", "Integration Crew")
	wb.Ability = entities.AbilityScavengers

	require.NoError(t, repo.Create(ctx, wb))

	err := repo.Create(ctx, testutils.CreateTestWarband("wb-int-1", "owner-int", "Clone"))
	assert.True(t, wberr.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "wb-int-1")
	require.NoError(t, err)
	assert.Equal(t, "Integration Crew", got.Name)
	assert.Equal(t, entities.AbilityScavengers, got.Ability)
	assert.Len(t, got.Weirdos, 2)
	assert.False(t, got.CreatedAt.IsZero())

	got.Name = "Renamed Crew"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "wb-int-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed Crew", updated.Name)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	require.NoError(t, repo.Delete(ctx, "wb-int-1"))

	_, err = repo.Get(ctx, "wb-int-1")
	assert.True(t, wberr.IsNotFound(err))
}

func TestRedisIntegration_GetByOwner(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := warbands.NewRedis(client, nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestWarband("wb-a", "owner-many", "Alpha")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestWarband("wb-b", "owner-many", "Bravo")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestWarband("wb-c", "owner-other", "Charlie")))

	mine, err := repo.GetByOwner(ctx, "owner-many")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	names := []string{mine[0].Name, mine[1].Name}
	assert.ElementsMatch(t, []string{"Alpha", "Bravo"}, names)

	// Deleting removes the warband from the owner index too.
	require.NoError(t, repo.Delete(ctx, "wb-a"))
	mine, err = repo.GetByOwner(ctx, "owner-many")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
