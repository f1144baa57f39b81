package testutils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const basePlaceholder = "{{BASE}}"

// PokeAPIServer serves canned PokeAPI payloads. Locators embedded in the
// payloads point back at the server itself.
type PokeAPIServer struct {
	*httptest.Server

	mu       sync.Mutex
	failures map[string]int
	calls    map[string]int
}

// NewPokeAPIServer starts a fixture server that is closed with the test.
func NewPokeAPIServer(t *testing.T) *PokeAPIServer {
	t.Helper()

	s := &PokeAPIServer{
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	return s
}

// BaseURL is the API root, suitable for pokeapi.Config.BaseURL.
func (s *PokeAPIServer) BaseURL() string {
	return s.URL + "/api/v2/"
}

// Fail makes path (e.g. "move/85") answer with status from now on.
func (s *PokeAPIServer) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = status
}

// Calls returns how many times path was requested.
func (s *PokeAPIServer) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

func (s *PokeAPIServer) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/"), "/")

	s.mu.Lock()
	s.calls[path]++
	status, failing := s.failures[path]
	s.mu.Unlock()

	if failing {
		http.Error(w, http.StatusText(status), status)
		return
	}

	body, ok := pokeAPIFixtures[path]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(strings.ReplaceAll(body, basePlaceholder, s.BaseURL())))
}

const pikachuPayload = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "species": {"name": "pikachu", "url": "{{BASE}}pokemon-species/25/"},
  "types": [
    {"slot": 1, "type": {"name": "electric", "url": "{{BASE}}type/13/"}}
  ],
  "stats": [
    {"base_stat": 35, "effort": 0, "stat": {"name": "hp", "url": "{{BASE}}stat/1/"}},
    {"base_stat": 55, "effort": 0, "stat": {"name": "attack", "url": "{{BASE}}stat/2/"}},
    {"base_stat": 40, "effort": 0, "stat": {"name": "defense", "url": "{{BASE}}stat/3/"}},
    {"base_stat": 50, "effort": 0, "stat": {"name": "special-attack", "url": "{{BASE}}stat/4/"}},
    {"base_stat": 50, "effort": 0, "stat": {"name": "special-defense", "url": "{{BASE}}stat/5/"}},
    {"base_stat": 90, "effort": 2, "stat": {"name": "speed", "url": "{{BASE}}stat/6/"}}
  ],
  "sprites": {
    "front_default": "https://img.example/sprites/25.png",
    "other": {"official-artwork": {"front_default": "https://img.example/artwork/25.png"}}
  },
  "moves": [
    {"move": {"name": "thunder-shock", "url": "{{BASE}}move/84/"}, "version_group_details": [
      {"level_learned_at": 1, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "red-blue", "url": ""}},
      {"level_learned_at": 1, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "ruby-sapphire", "url": ""}}
    ]},
    {"move": {"name": "growl", "url": "{{BASE}}move/45/"}, "version_group_details": [
      {"level_learned_at": 1, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
    ]},
    {"move": {"name": "thunderbolt", "url": "{{BASE}}move/85/"}, "version_group_details": [
      {"level_learned_at": 0, "move_learn_method": {"name": "machine", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
    ]},
    {"move": {"name": "thunder-wave", "url": "{{BASE}}move/86/"}, "version_group_details": [
      {"level_learned_at": 9, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
    ]},
    {"move": {"name": "quick-attack", "url": "{{BASE}}move/98/"}, "version_group_details": [
      {"level_learned_at": 16, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "red-blue", "url": ""}},
      {"level_learned_at": 13, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "sword-shield", "url": ""}}
    ]}
  ]
}`

const taurosPayload = `{
  "id": 128,
  "name": "tauros",
  "height": 14,
  "weight": 884,
  "species": {"name": "tauros", "url": "{{BASE}}pokemon-species/128/"},
  "types": [
    {"slot": 1, "type": {"name": "normal", "url": "{{BASE}}type/1/"}}
  ],
  "stats": [
    {"base_stat": 75, "effort": 0, "stat": {"name": "hp", "url": "{{BASE}}stat/1/"}}
  ],
  "sprites": {"front_default": null, "other": {"official-artwork": {"front_default": "https://img.example/artwork/128.png"}}},
  "moves": []
}`

var pokeAPIFixtures = map[string]string{
	"pokemon/pikachu": pikachuPayload,
	"pokemon/25":      pikachuPayload,
	"pokemon/tauros":  taurosPayload,

	// Species with no evolution chain locator
	"pokemon/missingno": `{
  "id": 999, "name": "missingno",
  "species": {"name": "missingno", "url": "{{BASE}}pokemon-species/999/"},
  "types": [], "stats": [], "sprites": {}, "moves": []
}`,
	"pokemon-species/999": `{"id": 999, "name": "missingno", "names": [], "evolution_chain": null}`,

	"pokemon-species/25": `{
  "id": 25,
  "name": "pikachu",
  "names": [
    {"name": "ピカチュウ", "language": {"name": "ja", "url": ""}},
    {"name": "Pikachu", "language": {"name": "en", "url": ""}},
    {"name": "Pikachu", "language": {"name": "es", "url": ""}}
  ],
  "evolution_chain": {"url": "{{BASE}}evolution-chain/10/"}
}`,
	"pokemon-species/128": `{
  "id": 128,
  "name": "tauros",
  "names": [{"name": "Tauros", "language": {"name": "en", "url": ""}}],
  "evolution_chain": {"url": "{{BASE}}evolution-chain/60/"}
}`,

	"evolution-chain/10": `{
  "id": 10,
  "chain": {
    "species": {"name": "pichu", "url": ""},
    "evolution_details": [],
    "evolves_to": [{
      "species": {"name": "pikachu", "url": ""},
      "evolution_details": [{"min_level": null, "trigger": {"name": "level-up", "url": ""}, "item": null}],
      "evolves_to": [
        {
          "species": {"name": "raichu", "url": ""},
          "evolution_details": [{"min_level": null, "trigger": {"name": "use-item", "url": ""}, "item": {"name": "thunder-stone", "url": ""}}],
          "evolves_to": []
        },
        {
          "species": {"name": "raichu-alola", "url": ""},
          "evolution_details": [{"min_level": null, "trigger": {"name": "use-item", "url": ""}, "item": {"name": "thunder-stone", "url": ""}}],
          "evolves_to": []
        }
      ]
    }]
  }
}`,
	"evolution-chain/60": `{
  "id": 60,
  "chain": {"species": {"name": "tauros", "url": ""}, "evolution_details": [], "evolves_to": []}
}`,

	"type/13": `{
  "id": 13,
  "name": "electric",
  "names": [
    {"name": "Electric", "language": {"name": "en", "url": ""}},
    {"name": "Eléctrico", "language": {"name": "es", "url": ""}}
  ]
}`,
	"type/1": `{
  "id": 1,
  "name": "normal",
  "names": [{"name": "Normal", "language": {"name": "en", "url": ""}}]
}`,

	"move/84": `{
  "id": 84, "name": "thunder-shock", "accuracy": 100, "power": 40, "pp": 30,
  "type": {"name": "electric", "url": "{{BASE}}type/13/"},
  "names": [
    {"name": "Thunder Shock", "language": {"name": "en", "url": ""}},
    {"name": "Impactrueno", "language": {"name": "es", "url": ""}}
  ],
  "flavor_text_entries": [
    {"flavor_text": "An electric attack\nthat may paralyze\nthe foe.", "language": {"name": "en", "url": ""}, "version_group": {"name": "gold-silver", "url": ""}},
    {"flavor_text": "An electrical attack that\nmay paralyze the foe.", "language": {"name": "en", "url": ""}, "version_group": {"name": "red-blue", "url": ""}},
    {"flavor_text": "Ataque eléctrico que\npuede paralizar.", "language": {"name": "es", "url": ""}, "version_group": {"name": "x-y", "url": ""}}
  ],
  "effect_entries": [
    {"effect": "Inflicts regular damage.", "short_effect": "Has a 10% chance to paralyze the target.", "language": {"name": "en", "url": ""}}
  ]
}`,
	"move/45": `{
  "id": 45, "name": "growl", "accuracy": 100, "power": null, "pp": 40,
  "type": {"name": "normal", "url": "{{BASE}}type/1/"},
  "names": [
    {"name": "Growl", "language": {"name": "en", "url": ""}},
    {"name": "Gruñido", "language": {"name": "es", "url": ""}}
  ],
  "flavor_text_entries": [],
  "effect_entries": [
    {"effect": "Lowers the target's Attack by one stage.", "short_effect": "Lowers the target's   Attack by one stage.", "language": {"name": "en", "url": ""}}
  ]
}`,
	"move/85": `{
  "id": 85, "name": "thunderbolt", "accuracy": 100, "power": 90, "pp": 15,
  "type": {"name": "electric", "url": "{{BASE}}type/13/"},
  "names": [{"name": "Thunderbolt", "language": {"name": "en", "url": ""}}],
  "flavor_text_entries": [
    {"flavor_text": "A strong electrical attack.", "language": {"name": "en", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
  ],
  "effect_entries": []
}`,
	"move/86": `{
  "id": 86, "name": "thunder-wave", "accuracy": 90, "power": null, "pp": 20,
  "type": {"name": "electric", "url": "{{BASE}}type/13/"},
  "names": [{"name": "Thunder Wave", "language": {"name": "en", "url": ""}}],
  "flavor_text_entries": [
    {"flavor_text": "A weak jolt of\nelectricity that\nparalyzes the foe.", "language": {"name": "en", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
  ],
  "effect_entries": []
}`,
	"move/98": `{
  "id": 98, "name": "quick-attack", "accuracy": 100, "power": 40, "pp": 30,
  "type": {"name": "normal", "url": "{{BASE}}type/1/"},
  "names": [{"name": "Quick Attack", "language": {"name": "en", "url": ""}}],
  "flavor_text_entries": [
    {"flavor_text": "An extremely fast\nattack that always\nstrikes first.", "language": {"name": "en", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
  ],
  "effect_entries": []
}`,
}
