package flight

import (
	"math"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

// fare multipliers applied to the base (standard) fare
const (
	BasicMultiplier    = 0.8
	StandardMultiplier = 1.0
	FlexMultiplier     = 1.3
)

var fareTierInfos = []dto.FareTierInfo{
	{
		Tier:       dto.FareBasic,
		Name:       "Basic",
		Multiplier: BasicMultiplier,
		Features: []string{
			"Cabin baggage only",
			"No flight changes",
			"No refunds",
			"No seat selection",
		},
	},
	{
		Tier:       dto.FareStandard,
		Name:       "Standard",
		Multiplier: StandardMultiplier,
		Features: []string{
			"23kg checked baggage",
			"Standard seat selection",
			"Flight changes with fee",
			"Partial refund available",
		},
	},
	{
		Tier:       dto.FareFlex,
		Name:       "Flex",
		Multiplier: FlexMultiplier,
		Features: []string{
			"32kg checked baggage",
			"Premium seat selection",
			"Free flight changes",
			"Full refund available",
			"Priority check-in",
		},
	},
}

// FareTierInfos returns the fare families offered with every flight.
func FareTierInfos() []dto.FareTierInfo {
	infos := make([]dto.FareTierInfo, len(fareTierInfos))
	for i, info := range fareTierInfos {
		info.Features = append([]string(nil), info.Features...)
		infos[i] = info
	}
	return infos
}

// PricesFromBase derives every tier's fare from the base fare.
func PricesFromBase(base int) dto.Prices {
	return dto.Prices{
		Basic:    int(math.Round(float64(base) * BasicMultiplier)),
		Standard: base,
		Flex:     int(math.Round(float64(base) * FlexMultiplier)),
	}
}
