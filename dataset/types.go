// Package dataset synthesizes the simulator's two toy tables: timber
// harvesting as a function of elevation, and bird density by tree species.
//
// Datasets are built once from a sample.Stream and never mutated; changing
// the seed and rebuilding is the only update path. Dependent columns are
// derived from independent columns through explicit linear transforms plus
// independently drawn noise, so the correlation structure of a table is a
// property of the formulas, never of shared random draws.
package dataset

type (
	// Climate is the closed set of climate categories.
	Climate uint8
	// Species is the closed set of tree species categories.
	Species uint8
)

const (
	ClimateWet      Climate = 0x1 // ClimateWet represents the wet climate class.
	ClimateModerate Climate = 0x2 // ClimateModerate represents the moderate climate class.
	ClimateDry      Climate = 0x3 // ClimateDry represents the dry climate class.

	SpeciesCedar      Species = 0x1 // SpeciesCedar represents western red cedar.
	SpeciesDouglasFir Species = 0x2 // SpeciesDouglasFir represents Douglas-fir.
	SpeciesHemlock    Species = 0x3 // SpeciesHemlock represents western hemlock.
)

func (c Climate) String() string {
	switch c {
	case ClimateWet:
		return "Wet"
	case ClimateModerate:
		return "Moderate"
	case ClimateDry:
		return "Dry"
	default:
		return "Unknown"
	}
}

func (s Species) String() string {
	switch s {
	case SpeciesCedar:
		return "Cedar"
	case SpeciesDouglasFir:
		return "Douglas-fir"
	case SpeciesHemlock:
		return "Hemlock"
	default:
		return "Unknown"
	}
}

// Climates returns the climate labels in declared order. The order fixes
// both the cyclic row assignment and the dummy-expansion reference level.
func Climates() []Climate {
	return []Climate{ClimateWet, ClimateModerate, ClimateDry}
}

// AllSpecies returns the species labels in declared order. The order fixes
// both the long-form interleaving and the dummy-expansion reference level.
func AllSpecies() []Species {
	return []Species{SpeciesCedar, SpeciesDouglasFir, SpeciesHemlock}
}
