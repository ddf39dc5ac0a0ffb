package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call METHOD [JSON]",
	Short: "Call any game service method with a JSON request",
	Long:  `Call any game service method, e.g. client call SaveGameData '{"game_data": {...}}'.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		req := map[string]any{}
		if len(args) == 2 {
			if err := json.Unmarshal([]byte(args[1]), &req); err != nil {
				return fmt.Errorf("request must be a JSON object: %w", err)
			}
		}
		return invoke(args[0], req)
	},
}

var createGameCmd = &cobra.Command{
	Use:   "create-game NAME",
	Short: "Create a new game save",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("CreateNewGame", map[string]any{"character_name": args[0]})
	},
}

var listSavesCmd = &cobra.Command{
	Use:   "list-saves",
	Short: "List the user's game saves",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ListGameSaves", map[string]any{})
	},
}

var startSessionCmd = &cobra.Command{
	Use:   "start-session GAME_SAVE_ID",
	Short: "Start a session on a game save",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("StartGameSession", map[string]any{"game_save_id": args[0]})
	},
}

var encounterCmd = &cobra.Command{
	Use:   "encounter SCENE",
	Short: "Walk through grass in a scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("InGrassRandomPokemonEncounter", map[string]any{"scene_name": args[0]})
	},
}
