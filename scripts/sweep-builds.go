package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Simple representation to check data structure
type draftRecord struct {
	ID       string `json:"ID"`
	PlayerID string `json:"PlayerID"`
}

const (
	draftKeyPrefix  = "build:"
	playerKeyPrefix = "build:player:"
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

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning build drafts...")

	// Pass 1: every draft record must parse and carry its own key's ID
	iter := client.Scan(ctx, 0, draftKeyPrefix+"*", 0).Iterator()

	drafts := make(map[string]string) // draft ID -> player ID
	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerKeyPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record draftRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if record.ID == "" || record.PlayerID == "" {
			fmt.Printf("✗ Incomplete record in %s: missing ID or player ID\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if key != draftKeyPrefix+record.ID {
			fmt.Printf("✗ Key mismatch in %s: record claims ID %s\n", key, record.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		drafts[record.ID] = record.PlayerID
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Pass 2: player index sets must only reference surviving drafts
	orphans := make(map[string][]string) // player key -> stale draft IDs
	indexed := make(map[string]bool)     // draft IDs present in some index

	iter = client.Scan(ctx, 0, playerKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		playerKey := iter.Val()

		members, err := client.SMembers(ctx, playerKey).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", playerKey, err)
			continue
		}

		for _, draftID := range members {
			if _, ok := drafts[draftID]; ok {
				indexed[draftID] = true
				continue
			}
			fmt.Printf("✗ Orphaned index entry in %s: draft %s does not exist\n", playerKey, draftID)
			orphans[playerKey] = append(orphans[playerKey], draftID)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during index scan:", err)
	}

	// Drafts the list operation can no longer find
	missing := make(map[string]string) // draft ID -> player ID
	for draftID, playerID := range drafts {
		if !indexed[draftID] {
			fmt.Printf("✗ Draft %s missing from player index %s%s\n", draftID, playerKeyPrefix, playerID)
			missing[draftID] = playerID
		}
	}

	fmt.Printf("\nChecked %d drafts: %d corrupted, %d orphaned index entries, %d unindexed\n",
		checkedCount, len(corruptedKeys), countOrphans(orphans), len(missing))

	if len(corruptedKeys) == 0 && len(orphans) == 0 && len(missing) == 0 {
		fmt.Println("No problems found!")
		return
	}

	// Ask for confirmation before touching anything
	fmt.Print("\nDelete corrupted records, drop orphaned index entries, and reindex unindexed drafts? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}

	for playerKey, draftIDs := range orphans {
		for _, draftID := range draftIDs {
			if err := client.SRem(ctx, playerKey, draftID).Err(); err != nil {
				fmt.Printf("Failed to remove %s from %s: %v\n", draftID, playerKey, err)
			} else {
				fmt.Printf("Removed %s from %s\n", draftID, playerKey)
			}
		}
	}

	for draftID, playerID := range missing {
		if err := client.SAdd(ctx, playerKeyPrefix+playerID, draftID).Err(); err != nil {
			fmt.Printf("Failed to reindex %s: %v\n", draftID, err)
		} else {
			fmt.Printf("Reindexed %s under %s%s\n", draftID, playerKeyPrefix, playerID)
		}
	}

	fmt.Println("\nSweep complete!")
}

func countOrphans(orphans map[string][]string) int {
	var n int
	for _, draftIDs := range orphans {
		n += len(draftIDs)
	}
	return n
}
