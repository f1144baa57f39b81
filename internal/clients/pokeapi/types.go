package pokeapi

// NamedResource is PokeAPI's {name, url} reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Resource is an unnamed {url} reference.
type Resource struct {
	URL string `json:"url"`
}

// Name is one localized name of a resource.
type Name struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// LocalizedName returns the entry for language, if present and non-empty.
func LocalizedName(names []Name, language string) (string, bool) {
	for _, n := range names {
		if n.Language.Name == language && n.Name != "" {
			return n.Name, true
		}
	}
	return "", false
}

// Pokemon is the /pokemon/{id or name} payload.
type Pokemon struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Height  int           `json:"height"` // decimetres
	Weight  int           `json:"weight"` // hectograms
	Species NamedResource `json:"species"`
	Types   []PokemonType `json:"types"`
	Stats   []PokemonStat `json:"stats"`
	Sprites Sprites       `json:"sprites"`
	Moves   []PokemonMove `json:"moves"`
}

// PokemonType is a slotted type reference.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonStat is a base stat.
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds the image URLs we care about.
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds alternative artwork.
type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

// Artwork is a single artwork set.
type Artwork struct {
	FrontDefault string `json:"front_default"`
}

// PokemonMove is a move reference with per-version-group learn data.
type PokemonMove struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

// VersionGroupDetail is how a move is learned in one version group.
type VersionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

// Species is the /pokemon-species payload.
type Species struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Names          []Name    `json:"names"`
	EvolutionChain *Resource `json:"evolution_chain"`
}

// EvolutionChain is the /evolution-chain payload.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is a node of the evolution tree.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is the condition for evolving into a ChainLink.
type EvolutionDetail struct {
	MinLevel *int           `json:"min_level"`
	Trigger  NamedResource  `json:"trigger"`
	Item     *NamedResource `json:"item"`
}

// Type is the /type payload.
type Type struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Names []Name `json:"names"`
}

// Move is the /move payload.
type Move struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Names             []Name           `json:"names"`
	Accuracy          *int             `json:"accuracy"`
	Power             *int             `json:"power"`
	PP                *int             `json:"pp"`
	Type              *NamedResource   `json:"type"`
	FlavorTextEntries []MoveFlavorText `json:"flavor_text_entries"`
	EffectEntries     []VerboseEffect  `json:"effect_entries"`
}

// MoveFlavorText is in-game description text for one version group.
type MoveFlavorText struct {
	FlavorText   string         `json:"flavor_text"`
	Language     NamedResource  `json:"language"`
	VersionGroup *NamedResource `json:"version_group"`
}

// VerboseEffect is the mechanical effect description.
type VerboseEffect struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}
