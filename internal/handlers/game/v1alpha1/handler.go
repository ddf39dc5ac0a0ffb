package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements the game grpc service
type Handler struct {
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

// handle decodes the request, runs call for the identified caller and encodes
// its result. Errors leave as grpc status errors.
func handle[Req, Resp any](
	ctx context.Context,
	req *structpb.Struct,
	call func(ctx context.Context, c caller, in *Req) (Resp, error),
) (*structpb.Struct, error) {
	c := callerFromContext(ctx)
	if c.UserID == "" {
		return nil, errors.ToGRPCError(errors.Unauthenticated(MetadataUserID + " metadata is required"))
	}

	var in Req
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := call(ctx, c, &in)
	if err != nil {
		if errors.IsServerError(err) {
			method, _ := grpc.Method(ctx)
			slog.ErrorContext(ctx, "request failed",
				"method", method,
				"user_id", c.UserID,
				"error", err)
		}
		return nil, errors.ToGRPCError(err)
	}

	resp, err := encode(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// CreateNewGame creates a save for the caller
func (h *Handler) CreateNewGame(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *createNewGameRequest) (*createNewGameResponse, error) {
		out, err := h.gameService.CreateNewGame(ctx, &game.CreateNewGameInput{
			UserID:        c.UserID,
			CharacterName: in.CharacterName,
		})
		if err != nil {
			return nil, err
		}
		return &createNewGameResponse{GameSave: out.GameSave, GameSaveData: out.GameSaveData}, nil
	})
}

// ListGameSaves lists the caller's saves
func (h *Handler) ListGameSaves(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, _ *empty) (*listGameSavesResponse, error) {
		out, err := h.gameService.ListGameSaves(ctx, &game.ListGameSavesInput{UserID: c.UserID})
		if err != nil {
			return nil, err
		}
		return &listGameSavesResponse{GameSaves: out.GameSaves}, nil
	})
}

// StartGameSession binds the caller's connection to a save
func (h *Handler) StartGameSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *startGameSessionRequest) (*startGameSessionResponse, error) {
		out, err := h.gameService.StartGameSession(ctx, &game.StartGameSessionInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
			GameSaveID:   in.GameSaveID,
		})
		if err != nil {
			return nil, err
		}
		return &startGameSessionResponse{
			GameSession:             out.GameSession,
			TerminatedConnectionIDs: out.TerminatedConnectionIDs,
		}, nil
	})
}

// EndGameSession ends the session of the caller's connection
func (h *Handler) EndGameSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, _ *empty) (*gameSessionResponse, error) {
		out, err := h.gameService.EndGameSession(ctx, &game.EndGameSessionInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
		})
		if err != nil {
			return nil, err
		}
		return &gameSessionResponse{GameSession: out.GameSession}, nil
	})
}

// GetGameSaveData returns the data of the session's save
func (h *Handler) GetGameSaveData(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, _ *empty) (*gameSaveDataResponse, error) {
		out, err := h.gameService.GetGameSaveData(ctx, &game.GetGameSaveDataInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
		})
		if err != nil {
			return nil, err
		}
		return &gameSaveDataResponse{GameSaveData: out.GameSaveData}, nil
	})
}

// SaveGameData stores the session save's payload
func (h *Handler) SaveGameData(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *saveGameDataRequest) (*gameSaveDataResponse, error) {
		out, err := h.gameService.SaveGameData(ctx, &game.SaveGameDataInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
			GameData:     in.GameData,
		})
		if err != nil {
			return nil, err
		}
		return &gameSaveDataResponse{GameSaveData: out.GameSaveData}, nil
	})
}

// GetOwnedPokemonInDeck returns the session save's deck
func (h *Handler) GetOwnedPokemonInDeck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *deckRequest) (*ownedPokemonListResponse, error) {
		out, err := h.gameService.GetOwnedPokemonInDeck(ctx, &game.GetOwnedPokemonInDeckInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
			Deep:         in.Deep,
		})
		if err != nil {
			return nil, err
		}
		return &ownedPokemonListResponse{OwnedPokemon: out.OwnedPokemon}, nil
	})
}

// GetOwnedPokemonByID returns pokemon of the session's save
func (h *Handler) GetOwnedPokemonByID(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *ownedPokemonByIDRequest) (*ownedPokemonListResponse, error) {
		out, err := h.gameService.GetOwnedPokemonByID(ctx, &game.GetOwnedPokemonByIDInput{
			ConnectionID:    c.ConnectionID,
			UserID:          c.UserID,
			OwnedPokemonIDs: in.OwnedPokemonIDs,
			Deep:            in.Deep,
		})
		if err != nil {
			return nil, err
		}
		return &ownedPokemonListResponse{OwnedPokemon: out.OwnedPokemon}, nil
	})
}

// RefillDeckHp heals the session save's deck
func (h *Handler) RefillDeckHp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, _ *empty) (*ownedPokemonListResponse, error) {
		out, err := h.gameService.RefillDeckHp(ctx, &game.RefillDeckHpInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
		})
		if err != nil {
			return nil, err
		}
		return &ownedPokemonListResponse{OwnedPokemon: out.OwnedPokemon}, nil
	})
}

// AddExperience grants experience to a pokemon of the session's save
func (h *Handler) AddExperience(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *addExperienceRequest) (*addExperienceResponse, error) {
		out, err := h.gameService.AddExperience(ctx, &game.AddExperienceInput{
			ConnectionID:   c.ConnectionID,
			UserID:         c.UserID,
			OwnedPokemonID: in.OwnedPokemonID,
			Experience:     in.Experience,
		})
		if err != nil {
			return nil, err
		}
		return &addExperienceResponse{OwnedPokemon: out.OwnedPokemon, LevelsGained: out.LevelsGained}, nil
	})
}

// InGrassRandomPokemonEncounter rolls for a wild pokemon
func (h *Handler) InGrassRandomPokemonEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, c caller, in *encounterRequest) (*encounterResponse, error) {
		out, err := h.gameService.InGrassRandomPokemonEncounter(ctx, &game.InGrassRandomPokemonEncounterInput{
			ConnectionID: c.ConnectionID,
			UserID:       c.UserID,
			SceneName:    in.SceneName,
		})
		if err != nil {
			return nil, err
		}
		return &encounterResponse{WildPokemon: out.WildPokemon}, nil
	})
}
