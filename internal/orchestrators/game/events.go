package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Domain events published after a write has been committed
const (
	EventGameSaveCreated        = "game_save.created"
	EventGameSessionStarted     = "game_session.started"
	EventGameSessionEnded       = "game_session.ended"
	EventGameSaveDataSaved      = "game_save_data.saved"
	EventWildPokemonEncountered = "wild_pokemon.encountered"
	EventOwnedPokemonLeveledUp  = "owned_pokemon.leveled_up"
)

// Keys set on the event context
const (
	EventKeyUserID                  = "user_id"
	EventKeyGameSaveID              = "game_save_id"
	EventKeyVersion                 = "version"
	EventKeyTerminatedConnectionIDs = "terminated_connection_ids"
	EventKeyLevel                   = "level"
	EventKeyLevelsGained            = "levels_gained"
	EventKeyMoves                   = "moves"
)

// publish emits a domain event. The write it describes is already committed,
// so a failing subscriber is logged and otherwise ignored.
func (o *Orchestrator) publish(
	ctx context.Context,
	eventType string,
	source, target core.Entity,
	data map[string]any,
) {
	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event_type", eventType,
			"source_id", source.GetID(),
			"error", err)
	}
}
