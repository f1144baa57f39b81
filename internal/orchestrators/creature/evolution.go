package creature

import (
	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

// flattenEvolution walks the first child of every node. Branching chains
// (eevee, the alolan raichu line) are truncated to their first branch.
func flattenEvolution(root *pokeapi.ChainLink) []pokedex.EvolutionStep {
	var steps []pokedex.EvolutionStep

	for link := root; link != nil; {
		step := pokedex.EvolutionStep{Name: link.Species.Name}

		// the root's details describe nothing it evolves from
		if len(steps) > 0 && len(link.EvolutionDetails) > 0 {
			detail := link.EvolutionDetails[0]
			if detail.MinLevel != nil && *detail.MinLevel > 0 {
				level := *detail.MinLevel
				step.MinLevel = &level
			}
			step.Trigger = detail.Trigger.Name
			if detail.Item != nil {
				step.Item = detail.Item.Name
			}
		}

		steps = append(steps, step)

		if len(link.EvolvesTo) == 0 {
			break
		}
		link = &link.EvolvesTo[0]
	}

	return steps
}
