package moves

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

// SelectMoves returns, in input order, the moves with at least one version
// group detail matching filter. It performs no I/O.
func SelectMoves(raw []pokedex.RawMoveRef, filter pokedex.FilterState) []Selection {
	if _, ok := filter.Generation.VersionGroup(); !ok {
		return nil
	}

	var selected []Selection
	for _, move := range raw {
		for _, detail := range move.Details {
			if filter.Matches(detail) {
				selected = append(selected, Selection{Move: move, Matched: detail})
				break
			}
		}
	}
	return selected
}

// LearnedAt returns the level and method a move is listed under. Both come
// from the first version group detail in source order, not from the detail
// that matched the filter. A missing or zero level reads as 1.
func LearnedAt(move pokedex.RawMoveRef) (int, pokedex.LearnMethod) {
	if len(move.Details) == 0 {
		return 1, pokedex.MethodOther
	}

	first := move.Details[0]
	level := first.LevelLearnedAt
	if level < 1 {
		level = 1
	}
	return level, pokedex.ParseLearnMethod(first.Method)
}
