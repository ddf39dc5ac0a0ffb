// Command check-store-data scans redis for save data and owned pokemon that
// no longer pass validation or whose game save is gone. It only reports.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/rules"
	"github.com/KirkDiggler/pokemon-api/internal/validation"
)

const (
	gameSaveKeyPrefix     = "game_save:"
	saveDataKeyPrefix     = "game_save_data:"
	ownedPokemonKeyPrefix = "owned_pokemon:"
	ownedIndexKeyPrefix   = "owned_pokemon:save:"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	rulesCfg, err := rules.LoadConfig(os.Getenv("RULES_PATH"))
	if err != nil {
		log.Fatal("Failed to load rules:", err)
	}
	validators, err := validation.New(&validation.Config{
		MaxLevel:    rulesCfg.MaxLevel,
		MaxDeckSize: rulesCfg.MaxDeckSize,
	})
	if err != nil {
		log.Fatal("Failed to build validators:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	var problems []string

	checked := scan(ctx, client, saveDataKeyPrefix+"*", func(key, raw string) {
		var data entities.GameSaveData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			problems = append(problems, fmt.Sprintf("%s: corrupted JSON", key))
			return
		}
		if err := validators.GameSaveData.Validate(ctx, &data); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", key, err))
		}
	})

	checked += scan(ctx, client, ownedPokemonKeyPrefix+"*", func(key, raw string) {
		if strings.HasPrefix(key, ownedIndexKeyPrefix) {
			return
		}
		var owned entities.OwnedPokemon
		if err := json.Unmarshal([]byte(raw), &owned); err != nil {
			problems = append(problems, fmt.Sprintf("%s: corrupted JSON", key))
			return
		}
		if err := validators.OwnedPokemon.Validate(ctx, &owned); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", key, err))
		}
		exists, err := client.Exists(ctx, gameSaveKeyPrefix+owned.GameSaveID).Result()
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", key, err))
			return
		}
		if exists == 0 {
			problems = append(problems, fmt.Sprintf("%s: game save %s does not exist", key, owned.GameSaveID))
		}
	})

	fmt.Printf("\nChecked %d records, found %d problems\n", checked, len(problems))
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}
}

// scan visits every string key matching pattern and returns how many it read
func scan(ctx context.Context, client *redis.Client, pattern string, visit func(key, raw string)) int {
	count := 0
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			// index sets share the prefix and are not strings
			if strings.Contains(err.Error(), "WRONGTYPE") {
				continue
			}
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}
		count++
		visit(key, raw)
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}
	return count
}
