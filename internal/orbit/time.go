package orbit

import "time"

// JulianDay converts a time to a Julian Day number.
func JulianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/86400000.0 + 2440587.5
}

// CenturiesSinceJ2000 returns Julian centuries elapsed since the J2000.0
// epoch for a Julian Day.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// QuantizeTime rounds an instant to the nearest whole second. Position
// queries issued within the same rendering tick then resolve to identical
// coordinates, which keeps the camera plane stable against clock jitter.
func QuantizeTime(t time.Time) time.Time {
	return t.Round(time.Second)
}

// meanAnomalyAt advances a mean anomaly linearly from a reference epoch.
func meanAnomalyAt(atEpochDeg, degPerDay, epochJD, jd float64) float64 {
	days := jd - epochJD
	return norm360(atEpochDeg + degPerDay*days)
}
