package domain

import "github.com/m04kA/SMC-VideoLinkService/pkg/types"

// PrisonRegime is the part of the day during which a prison runs video links
type PrisonRegime struct {
	PrisonCode string
	StartOfDay types.TimeString
	EndOfDay   types.TimeString
}

// DefaultPrisonRegime is used for prisons without a configured regime
func DefaultPrisonRegime(prisonCode string) PrisonRegime {
	return PrisonRegime{
		PrisonCode: prisonCode,
		StartOfDay: DefaultStartOfDay,
		EndOfDay:   DefaultEndOfDay,
	}
}
