package scoring

import "math"

//**********************************************************
// facility weights
//**********************************************************

// FacilityCounts carries the raw facility counts of one station (or
// one group of stations sharing a complex) as delivered by the
// accessibility feed.
type FacilityCounts struct {
	Chargers      float64 `json:"charger_count"`
	Elevators     float64 `json:"elevator_count"`
	Escalators    float64 `json:"escalator_count"`
	Lifts         float64 `json:"lift_count"`
	MovingWalks   float64 `json:"movingwalk_count"`
	SafePlatforms float64 `json:"safe_platform_count"`
	SignPhones    float64 `json:"sign_phone_count"`
	Toilets       float64 `json:"toilet_count"`
	Helpers       float64 `json:"helper_count"`
}

// FacilityWeights encodes how much each facility category matters to
// one profile, on a 0.0 (irrelevant) to 5.0 (required) scale.
type FacilityWeights struct {
	Charger      float64
	Elevator     float64
	Escalator    float64
	Lift         float64
	MovingWalk   float64
	SafePlatform float64
	SignPhone    float64
	Toilet       float64
	Helper       float64
}

var facility_weights = [DISABILITY_COUNT]FacilityWeights{
	PHY: {3.0, 5.0, 3.0, 2.0, 2.0, 5.0, 0.0, 3.0, 4.0},
	VIS: {0.0, 3.0, 3.0, 0.0, 2.0, 5.0, 0.0, 0.0, 4.0},
	AUD: {0.0, 3.0, 3.0, 0.0, 2.0, 3.0, 4.5, 0.0, 4.0},
	ELD: {0.0, 4.0, 4.0, 0.0, 4.0, 4.0, 0.0, 1.0, 4.0},
}

func GetFacilityWeights(typ DisabilityType) FacilityWeights {
	return facility_weights[typ]
}

// NormalizeScore bounds a raw facility aggregate to (0, 1).
func NormalizeScore(raw float64, slope float64) float64 {
	return 1.0 / (1.0 + math.Exp(-slope*raw))
}

// ComputeStationScores turns raw facility counts into the length-4
// accessibility vector assigned to a station, one sigmoid-normalized
// weighted sum per profile.
func ComputeStationScores(counts FacilityCounts, slope float64) [DISABILITY_COUNT]float64 {
	var scores [DISABILITY_COUNT]float64
	for i := 0; i < DISABILITY_COUNT; i++ {
		w := facility_weights[i]
		raw := counts.Chargers*w.Charger +
			counts.Elevators*w.Elevator +
			counts.Escalators*w.Escalator +
			counts.Lifts*w.Lift +
			counts.MovingWalks*w.MovingWalk +
			counts.SafePlatforms*w.SafePlatform +
			counts.SignPhones*w.SignPhone +
			counts.Toilets*w.Toilet +
			counts.Helpers*w.Helper
		scores[i] = NormalizeScore(raw, slope)
	}
	return scores
}

//**********************************************************
// ANP criterion weights
//**********************************************************

// ANPWeights weighs the five decision criteria for one profile.
// Each row is normalized to sum to 1.
type ANPWeights struct {
	TravelTime         float64
	Transfers          float64
	TransferDifficulty float64
	Convenience        float64
	Congestion         float64
}

var anp_weights = [DISABILITY_COUNT]ANPWeights{
	PHY: {0.0543, 0.4826, 0.2391, 0.1196, 0.1044},
	VIS: {0.0623, 0.1198, 0.2043, 0.4938, 0.1198},
	AUD: {0.1519, 0.2938, 0.0823, 0.3897, 0.0823},
	ELD: {0.0739, 0.1304, 0.2174, 0.0609, 0.5174},
}

func GetANPWeights(typ DisabilityType) ANPWeights {
	return anp_weights[typ]
}

//**********************************************************
// walking speeds
//**********************************************************

var walking_speeds = [DISABILITY_COUNT]float64{
	PHY: 0.50,
	VIS: 0.80,
	AUD: 0.98,
	ELD: 0.70,
}

// GetWalkingSpeed returns the assumed transfer walking speed in
// meters per second.
func GetWalkingSpeed(typ DisabilityType) float64 {
	return walking_speeds[typ]
}
