package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCatalogJSON is a small catalog covering the common test scenarios:
// an item anyone past level 25 can wear, a pistol with a steep skill
// requirement, a damage nano gated on Matter Creation, and a psychic buff.
const TestCatalogJSON = `{
  "items": [
    {
      "aoid": 156516,
      "name": "Omni-Pol Elite Mirror Shades",
      "ql": 35,
      "slot": "eyes",
      "criteria": [
        {"stat": 54, "op": 2, "value": 25}
      ],
      "effects": [
        {"kind": 1, "trigger": 2, "stat": 166, "delta": 5}
      ]
    },
    {
      "aoid": 204103,
      "name": "Customized Desert Reet",
      "ql": 125,
      "slot": "right_hand",
      "criteria": [
        {"stat": 112, "op": 2, "value": 551}
      ],
      "effects": [
        {"kind": 1, "trigger": 2, "stat": 112, "delta": 12}
      ],
      "weapon": {
        "attack_skill": 112,
        "attack_time": 120,
        "recharge_time": 100,
        "min_damage": 90,
        "max_damage": 330,
        "damage_type": 3,
        "attack_delay_cap": 100
      }
    }
  ],
  "nanos": [
    {
      "aoid": 301100,
      "name": "Crispy Chitin",
      "school": 4,
      "strain": 99,
      "ql": 125,
      "nano_cost": 200,
      "attack_time": 300,
      "recharge_time": 148,
      "min_damage": 100,
      "max_damage": 300,
      "damage_type": 3,
      "tick_count": 1,
      "criteria": [
        {"stat": 130, "op": 2, "value": 180}
      ]
    },
    {
      "aoid": 301130,
      "name": "Matrix of Clarity",
      "school": 3,
      "strain": 110,
      "ql": 60,
      "nano_cost": 120,
      "attack_time": 200,
      "recharge_time": 100,
      "tick_count": 1,
      "criteria": [
        {"stat": 54, "op": 2, "value": 20}
      ],
      "effects": [
        {"kind": 1, "trigger": 5, "stat": 21, "delta": 25}
      ]
    }
  ]
}`

// WriteTestCatalog writes content to catalog.json in a fresh temp
// directory and returns the directory, ready to use as a catalog DataDir.
func WriteTestCatalog(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(content), 0644))
	return dir
}
