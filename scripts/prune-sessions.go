// Command prune-sessions finds pokedex session keys in Redis that can no
// longer be served and offers to delete them: state that does not decode,
// state with no session id, and sequence counters whose state is gone.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/redis"
)

const (
	sessionPattern = "pokedex_session:*"
	sequenceSuffix = ":seq"
)

func main() {
	yes := flag.Bool("yes", false, "Delete without asking")
	flag.Parse()

	addr := os.Getenv("POKEDEX_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := redis.NewClient(addr, &redis.Options{Password: os.Getenv("POKEDEX_REDIS_PASSWORD")})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	if err := redis.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", addr)
	fmt.Println("Scanning for unusable session data...")

	iter := client.Scan(ctx, 0, sessionPattern, 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		if stateKey, ok := strings.CutSuffix(key, sequenceSuffix); ok {
			exists, err := client.Exists(ctx, stateKey).Result()
			if err != nil {
				fmt.Printf("Error checking %s: %v\n", stateKey, err)
				continue
			}
			if exists == 0 {
				fmt.Printf("✗ Orphaned counter %s\n", key)
				badKeys = append(badKeys, key)
			}
			continue
		}

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var state pokedex.AppState
		if err := json.Unmarshal([]byte(data), &state); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key, key+sequenceSuffix)
			continue
		}
		if state.SessionID == "" || !strings.HasSuffix(key, state.SessionID) {
			fmt.Printf("✗ Session id mismatch in %s: %q\n", key, state.SessionID)
			badKeys = append(badKeys, key, key+sequenceSuffix)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d to remove\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("Nothing to prune!")
		return
	}

	fmt.Println("\nKeys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	if !*yes {
		fmt.Print("\nDo you want to DELETE these keys? (yes/no): ")
		var response string
		_, _ = fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Aborted - no changes made")
			return
		}
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nPrune complete!")
}
