package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
	"github.com/rocketscienceinc/gogame-backend/testing/suite"
)

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Logger, st.Storage)

		// When: GetByID is called for an identity that never scored
		player, err := playerRepo.GetByID(ctx, "unknown")

		// Then: a zero record is returned for it
		require.NoError(t, err)
		assert.Equal(t, entity.Player{ID: "unknown"}, *player)
	})
}

func TestPlayerRepository_TotalParticipants(t *testing.T) {
	t.Run("TotalParticipants_Unreadable", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Logger, st.Storage)

		// Given: a total that does not fit in 32 bits
		require.NoError(t, st.Storage.Set(ctx, participantsKey, "4294967296", 0).Err())

		// When: the total is read
		total, err := playerRepo.TotalParticipants(ctx)

		// Then: it reads as zero
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestPlayerRepository_ListIndexed(t *testing.T) {
	t.Run("ListIndexed_OrderAndGaps", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Logger, st.Storage)
		playerRepo := NewPlayerRepository(st.Logger, st.Storage)

		// Given: identities at indices 3 and 1 with index 2 left empty
		for _, p := range []entity.Player{
			{ID: "c", Points: 5, Index: 3},
			{ID: "a", Points: 1, Index: 1},
		} {
			err := gameRepo.Update(ctx, p.ID, func(state *entity.State) error {
				state.Player = p
				state.Participants = 3
				return nil
			})
			require.NoError(t, err)
		}

		// When: the indexed records are listed
		players, err := playerRepo.ListIndexed(ctx)

		// Then: they come back in index order without the gap
		require.NoError(t, err)
		assert.Equal(t, []entity.Player{
			{ID: "a", Points: 1, Index: 1},
			{ID: "c", Points: 5, Index: 3},
		}, players)
	})

	t.Run("ListIndexed_Empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Logger, st.Storage)

		players, err := playerRepo.ListIndexed(ctx)

		require.NoError(t, err)
		assert.Empty(t, players)
	})
}
