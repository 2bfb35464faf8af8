package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleConnect")

	req, err := decodeRequest(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, req.PlayerID)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	c.playerID = player.PlayerID
	log.Info("player connected", "player_id", player.PlayerID)

	return that.sendMessage(c, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, c *client) error {
	playerID, err := that.playerID(msg, c)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	game, err := that.uGame.CreateGame(ctx, playerID)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return that.sendMessage(c, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handlePlaceStone(ctx context.Context, msg *Message, c *client) error {
	req, err := decodeRequest(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	if req.X == nil || req.Y == nil {
		return that.sendErrorResponse(c, msg.Action, "x and y are required")
	}

	turn, err := that.uGame.PlaceStone(ctx, c.resolve(req.PlayerID), *req.X, *req.Y)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return that.sendMessage(c, msg.Action, ResponsePayload{Turn: turn})
}

func (that *Server) handlePassTurn(ctx context.Context, msg *Message, c *client) error {
	playerID, err := that.playerID(msg, c)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	turn, err := that.uGame.PassTurn(ctx, playerID)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return that.sendMessage(c, msg.Action, ResponsePayload{Turn: turn})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, c *client) error {
	playerID, err := that.playerID(msg, c)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	game, err := that.uGame.GetGameState(ctx, playerID)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return that.sendMessage(c, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handlePlayerStats(ctx context.Context, msg *Message, c *client) error {
	playerID, err := that.playerID(msg, c)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	player, err := that.uGame.PlayerStats(ctx, playerID)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return that.sendMessage(c, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleLeaderboard(ctx context.Context, msg *Message, c *client) error {
	req, err := decodeRequest(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	limit := that.defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	entries, err := that.uGame.TopPlayers(ctx, limit)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return that.sendMessage(c, msg.Action, ResponsePayload{Leaderboard: entries})
}

// replyError sends rule violations back to the client and reports everything else to the caller.
func (that *Server) replyError(c *client, action string, err error) error {
	cause := apperror.RuleViolation(err)
	if cause != nil {
		return that.sendErrorResponse(c, action, cause.Error())
	}

	if sendErr := that.sendErrorResponse(c, action, "internal error"); sendErr != nil {
		return sendErr
	}

	return fmt.Errorf("failed to handle %s: %w", action, err)
}

func (that *Server) playerID(msg *Message, c *client) (string, error) {
	req, err := decodeRequest(msg)
	if err != nil {
		return "", err
	}

	return c.resolve(req.PlayerID), nil
}

func (that *client) resolve(playerID string) string {
	if playerID != "" {
		return playerID
	}

	return that.playerID
}

func decodeRequest(msg *Message) (*RequestPayload, error) {
	var req RequestPayload
	if len(msg.Payload) == 0 {
		return &req, nil
	}

	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &req, nil
}
