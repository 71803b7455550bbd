package consts

const (
	// NOTIFY_DISTANCE_RANGE is the radius in meters for broadcasting a
	// new request to nearby helpers.
	NOTIFY_DISTANCE_RANGE = 10000

	// MATCH_DISTANCE_RANGE_KM is the farthest a request may be from a
	// helper and still appear in recommendations.
	MATCH_DISTANCE_RANGE_KM = 50.0

	// DUPLICATE_RADIUS_KM / DUPLICATE_WINDOW_HOURS bound the candidate
	// set of the duplicate detector.
	DUPLICATE_RADIUS_KM    = 2.0
	DUPLICATE_WINDOW_HOURS = 24
)
