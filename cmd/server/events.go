package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/game"
)

// eventLogPriority runs the log subscriber after any domain subscriber
const eventLogPriority = 1000

// subscribeEventLog records every game event in the structured log
func subscribeEventLog(bus events.EventBus) {
	for _, eventType := range []string{
		game.EventGameSaveCreated,
		game.EventGameSessionStarted,
		game.EventGameSessionEnded,
		game.EventGameSaveDataSaved,
		game.EventWildPokemonEncountered,
		game.EventOwnedPokemonLeveledUp,
	} {
		bus.SubscribeFunc(eventType, eventLogPriority, logEvent)
	}
}

func logEvent(ctx context.Context, event events.Event) error {
	attrs := []any{"event_type", event.Type()}
	if source := event.Source(); source != nil {
		attrs = append(attrs, "source_id", source.GetID())
	}
	if target := event.Target(); target != nil {
		attrs = append(attrs, "target_id", target.GetID())
	}
	slog.InfoContext(ctx, "game event", attrs...)
	return nil
}
