package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesession"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
)

// StartGameSession binds a connection to one of the caller's saves. Any other
// session of the save is terminated.
func (o *Orchestrator) StartGameSession(
	ctx context.Context,
	input *game.StartGameSessionInput,
) (*game.StartGameSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("connection_id", input.ConnectionID, vb)
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("game_save_id", input.GameSaveID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	saveOut, err := o.saveRepo.Get(ctx, gamesave.GetInput{ID: input.GameSaveID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.AsServerError(err, "failed to load game save")
	}
	// another user's save is reported like a missing one
	if err != nil || saveOut.GameSave.UserID != input.UserID {
		return nil, errors.InvalidArgument("invalid game save id")
	}
	save := saveOut.GameSave

	now := o.clock.Now()
	session := &entities.GameSession{
		ConnectionID: input.ConnectionID,
		GameSaveID:   save.ID,
		UserID:       input.UserID,
		DateCreated:  now,
	}
	if err := o.validators.GameSession.Validate(ctx, session); err != nil {
		return nil, err
	}

	created, err := o.sessionRepo.Create(ctx, gamesession.CreateInput{GameSession: session})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to create game session")
	}

	save.LastPlayed = now
	if _, err := o.saveRepo.Update(ctx, gamesave.UpdateInput{GameSave: save}); err != nil {
		slog.WarnContext(ctx, "failed to update last played",
			"game_save_id", save.ID,
			"error", err)
	}

	slog.InfoContext(ctx, "game session started",
		"connection_id", session.ConnectionID,
		"game_save_id", session.GameSaveID,
		"terminated_sessions", len(created.TerminatedConnectionIDs))

	o.publish(ctx, EventGameSessionStarted, created.GameSession, save, map[string]any{
		EventKeyUserID:                  session.UserID,
		EventKeyGameSaveID:              session.GameSaveID,
		EventKeyTerminatedConnectionIDs: created.TerminatedConnectionIDs,
	})

	return &game.StartGameSessionOutput{
		GameSession:             created.GameSession,
		TerminatedConnectionIDs: created.TerminatedConnectionIDs,
	}, nil
}

// EndGameSession terminates the caller's session on a connection
func (o *Orchestrator) EndGameSession(
	ctx context.Context,
	input *game.EndGameSessionInput,
) (*game.EndGameSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.activeSession(ctx, input.ConnectionID, input.UserID); err != nil {
		return nil, err
	}

	out, err := o.sessionRepo.Delete(ctx, gamesession.DeleteInput{ConnectionID: input.ConnectionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no active game session for this connection")
		}
		return nil, errors.AsServerError(err, "failed to end game session")
	}

	o.publish(ctx, EventGameSessionEnded, out.GameSession, nil, map[string]any{
		EventKeyUserID:     out.GameSession.UserID,
		EventKeyGameSaveID: out.GameSession.GameSaveID,
	})

	return &game.EndGameSessionOutput{GameSession: out.GameSession}, nil
}

// RemoveGameSessions terminates every session of a save. Having none is fine.
func (o *Orchestrator) RemoveGameSessions(
	ctx context.Context,
	input *game.RemoveGameSessionsInput,
) (*game.RemoveGameSessionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("game_save_id", input.GameSaveID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.sessionRepo.DeleteByGameSaveID(ctx, gamesession.DeleteByGameSaveIDInput{
		GameSaveID: input.GameSaveID,
	})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to remove game sessions")
	}

	if out.Count > 0 {
		slog.InfoContext(ctx, "game sessions removed",
			"game_save_id", input.GameSaveID,
			"count", out.Count)
	}

	return &game.RemoveGameSessionsOutput{Count: out.Count}, nil
}
