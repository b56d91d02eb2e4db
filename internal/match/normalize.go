package match

import (
	"math"
	"strconv"
	"strings"
)

// Field normalization for uploaded rows. Each parser returns a best-effort
// value so a malformed field never aborts its row; the recovery policy lives
// here and nowhere else in the ingestion path.

// parseLapTimes splits a semicolon-separated list of lap durations. Segments
// that are empty, non-numeric, negative, or not finite are dropped. The
// result is never nil so an empty sequence serializes as [].
func parseLapTimes(field string) []float64 {
	laps := []float64{}
	for _, seg := range strings.Split(field, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		v, err := strconv.ParseFloat(seg, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			continue
		}
		laps = append(laps, v)
	}
	return laps
}

// parsePosition returns 0 ("unknown place") for missing, malformed, or
// negative positions. Position 0 never counts as a win.
func parsePosition(field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseTelemetryValue returns 0 for missing or malformed numeric telemetry.
func parseTelemetryValue(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
