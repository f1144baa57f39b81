package pokedex

import "strings"

// Generation is a game generation token as chosen in the UI ("1".."8").
type Generation string

// Known generations
const (
	Generation1 Generation = "1"
	Generation2 Generation = "2"
	Generation3 Generation = "3"
	Generation4 Generation = "4"
	Generation5 Generation = "5"
	Generation6 Generation = "6"
	Generation7 Generation = "7"
	Generation8 Generation = "8"
)

var generationVersionGroups = map[Generation]string{
	Generation1: "red-blue",
	Generation2: "gold-silver",
	Generation3: "ruby-sapphire",
	Generation4: "diamond-pearl",
	Generation5: "black-white",
	Generation6: "x-y",
	Generation7: "sun-moon",
	Generation8: "sword-shield",
}

// Generations lists the known generation tokens in order.
func Generations() []Generation {
	return []Generation{
		Generation1, Generation2, Generation3, Generation4,
		Generation5, Generation6, Generation7, Generation8,
	}
}

// VersionGroup returns the version group tag that represents g. The second
// return is false for an unrecognized token.
func (g Generation) VersionGroup() (string, bool) {
	vg, ok := generationVersionGroups[g]
	return vg, ok
}

// LearnMethod is how a move is acquired.
type LearnMethod string

// Learn methods
const (
	MethodLevelUp LearnMethod = "level-up"
	MethodMachine LearnMethod = "machine"
	MethodTutor   LearnMethod = "tutor"
	MethodEgg     LearnMethod = "egg"
	MethodOther   LearnMethod = "other"

	// MethodAll is only valid as a filter; it matches every method.
	MethodAll LearnMethod = "all"
)

// ParseLearnMethod maps an upstream method name onto a LearnMethod. Names
// outside the four tracked methods become MethodOther.
func ParseLearnMethod(name string) LearnMethod {
	switch m := LearnMethod(name); m {
	case MethodLevelUp, MethodMachine, MethodTutor, MethodEgg:
		return m
	default:
		return MethodOther
	}
}

// ParseFilterMethod normalises a method filter token as typed by a user.
// Case and surrounding space are ignored; unknown tokens are kept and match
// nothing.
func ParseFilterMethod(token string) LearnMethod {
	return LearnMethod(strings.ToLower(strings.TrimSpace(token)))
}

// ParseGeneration normalises a generation token as typed by a user.
func ParseGeneration(token string) Generation {
	return Generation(strings.TrimSpace(token))
}

// FilterState is the active move filter.
type FilterState struct {
	Generation Generation  `json:"generation"`
	Method     LearnMethod `json:"method"`
}

// DefaultFilter is the filter a new session starts with.
func DefaultFilter() FilterState {
	return FilterState{
		Generation: Generation1,
		Method:     MethodLevelUp,
	}
}

// Matches reports whether a version group detail satisfies the filter.
func (f FilterState) Matches(detail VersionGroupDetail) bool {
	vg, ok := f.Generation.VersionGroup()
	if !ok || detail.VersionGroup != vg {
		return false
	}
	return f.Method == MethodAll || string(f.Method) == detail.Method
}
