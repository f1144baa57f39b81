// Package pokedex holds the normalized, UI-ready model produced from PokeAPI
// payloads.
package pokedex

// MaxStatValue is the upper bound of a base stat.
const MaxStatValue = 255

// CreatureRecord is the flattened result of one successful search.
type CreatureRecord struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Types       []TypeRef       `json:"types"`
	Stats       []StatEntry     `json:"stats"`
	ArtworkURL  string          `json:"artwork_url"`
	Height      float64         `json:"height"` // metres
	Weight      float64         `json:"weight"` // kilograms
	Evolutions  []EvolutionStep `json:"evolutions"`

	// Moves is the unresolved move list, kept so filter changes can re-run
	// the move pipeline without another creature lookup.
	Moves []RawMoveRef `json:"moves"`
}

// TypeRef is an elemental type with its optional localized name.
type TypeRef struct {
	Name          string  `json:"name"`
	LocalizedName *string `json:"localized_name,omitempty"`
}

// Display returns the localized name when known, otherwise the canonical one.
func (t TypeRef) Display() string {
	if t.LocalizedName != nil && *t.LocalizedName != "" {
		return *t.LocalizedName
	}
	return t.Name
}

// StatEntry is a base stat in the range 0..MaxStatValue.
type StatEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// EvolutionStep is one stage of a linear evolution chain. MinLevel is nil for
// the first stage and for stages reached by a non-level condition, in which
// case Trigger and Item describe the condition.
type EvolutionStep struct {
	Name     string `json:"name"`
	MinLevel *int   `json:"min_level,omitempty"`
	Trigger  string `json:"trigger,omitempty"`
	Item     string `json:"item,omitempty"`
}

// RawMoveRef is a move as it appears on the creature payload. Nothing about
// it is resolved until a filter selects it.
type RawMoveRef struct {
	Name    string               `json:"name"`
	Locator string               `json:"locator"`
	Details []VersionGroupDetail `json:"details"`
}

// VersionGroupDetail records how a move is learned in one version group.
type VersionGroupDetail struct {
	LevelLearnedAt int    `json:"level_learned_at"`
	Method         string `json:"method"`
	VersionGroup   string `json:"version_group"`
}

// ResolvedMove is a selected move with its supplementary detail. The pointer
// fields are nil when the detail lookup failed or the upstream value is null.
type ResolvedMove struct {
	Name          string      `json:"name"`
	LocalizedName *string     `json:"localized_name,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Power         *int        `json:"power,omitempty"`
	Accuracy      *int        `json:"accuracy,omitempty"`
	Type          *string     `json:"type,omitempty"`
	Level         int         `json:"level"`
	Method        LearnMethod `json:"method"`
}

// Display returns the localized name when known, otherwise the canonical one.
func (m ResolvedMove) Display() string {
	if m.LocalizedName != nil && *m.LocalizedName != "" {
		return *m.LocalizedName
	}
	return m.Name
}
