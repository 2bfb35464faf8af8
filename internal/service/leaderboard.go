package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// MaxTop is the largest ranking the leaderboard returns.
const MaxTop = 10

type LeaderboardService interface {
	Points(ctx context.Context, playerID string) (uint32, error)
	Rank(ctx context.Context, playerID string) (uint32, error)
	TotalParticipants(ctx context.Context) (uint32, error)
	Top(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type playerRepo interface {
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	ListIndexed(ctx context.Context) ([]entity.Player, error)
	TotalParticipants(ctx context.Context) (uint32, error)
}

type leaderboardService struct {
	playerRepo playerRepo
}

func NewLeaderboardService(playerRepo playerRepo) LeaderboardService {
	return &leaderboardService{
		playerRepo: playerRepo,
	}
}

func (that *leaderboardService) Points(ctx context.Context, playerID string) (uint32, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player.Points, nil
}

func (that *leaderboardService) TotalParticipants(ctx context.Context) (uint32, error) {
	total, err := that.playerRepo.TotalParticipants(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get participants: %w", err)
	}

	return total, nil
}

// Top returns up to limit entries, highest points first. Ties keep index order.
func (that *leaderboardService) Top(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit < 1 {
		return nil, apperror.ErrInvalidLimit
	}

	players, err := that.playerRepo.ListIndexed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(players))
	for _, player := range players {
		if player.ID == "" {
			continue
		}

		entries = append(entries, entity.LeaderboardEntry{PlayerID: player.ID, Points: player.Points})
	}

	slices.SortStableFunc(entries, func(a, b entity.LeaderboardEntry) int {
		switch {
		case a.Points > b.Points:
			return -1
		case a.Points < b.Points:
			return 1
		default:
			return 0
		}
	})

	return entries[:min(limit, MaxTop, len(entries))], nil
}

// Rank is one plus the number of indexed identities with strictly more points.
// Identities without points are unranked (zero).
func (that *leaderboardService) Rank(ctx context.Context, playerID string) (uint32, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.Points == 0 {
		return 0, nil
	}

	players, err := that.playerRepo.ListIndexed(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list players: %w", err)
	}

	rank := uint32(1)
	for _, other := range players {
		if other.ID != playerID && other.Points > player.Points {
			rank++
		}
	}

	return rank, nil
}
