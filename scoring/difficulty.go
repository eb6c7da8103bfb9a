package scoring

//**********************************************************
// transfer difficulty
//**********************************************************

// TransferDifficulty rates one transfer in [0, 1] from its walking
// distance and the accessibility score of the transfer station for
// the active profile. station_score must already be sigmoid-bounded
// to (0, 1), which holds for every score stored in the network.
func TransferDifficulty(distance float64, station_score float64, params Params) float64 {
	distance_score := distance / params.TransferCutoff
	if distance_score > 1.0 {
		distance_score = 1.0
	}
	inconvenience := 1.0 - station_score
	return 0.6*distance_score + 0.4*inconvenience
}
