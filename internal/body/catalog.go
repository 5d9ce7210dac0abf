package body

import "github.com/litescript/ls-orrery/internal/orbit"

// Catalog returns a registry populated with the Sun, the eight planets
// (NASA J2000 Keplerian elements with century rates), and the major
// moons (parent-centric elements, mean motion in degrees per day,
// negative for Triton's retrograde orbit).
func Catalog() *Registry {
	r := NewRegistry()
	for _, b := range catalogBodies() {
		if err := r.Add(b); err != nil {
			// The compile-time tables are ordered parents-first and
			// validated by tests; a failure here is a build bug.
			panic("body: invalid catalog: " + err.Error())
		}
	}
	return r
}

func catalogBodies() []Body {
	return []Body{
		{Name: "Sun", Kind: KindStar, RadiusKm: 695700},

		{Name: "Mercury", Kind: KindPlanet, RadiusKm: 2439.7, Elements: orbit.Elements{
			SemiMajorAU: 0.38709843, Eccentricity: 0.20563661, InclinationDeg: 7.00559432,
			MeanLongitudeDeg: 252.25166724, LongPerihelionDeg: 77.45771895, LongAscNodeDeg: 48.33961819,
			SemiMajorDot: 0.00000000, EccentricityDot: 0.00002123, InclinationDot: -0.00590158,
			MeanLongitudeDot: 149472.67486623, LongPerihelionDot: 0.15940013, LongAscNodeDot: -0.12214182,
		}},
		{Name: "Venus", Kind: KindPlanet, RadiusKm: 6051.8, Elements: orbit.Elements{
			SemiMajorAU: 0.72333566, Eccentricity: 0.00677672, InclinationDeg: 3.39467605,
			MeanLongitudeDeg: 181.97970850, LongPerihelionDeg: 131.76755713, LongAscNodeDeg: 76.67984255,
			SemiMajorDot: 0.00000390, EccentricityDot: -0.00004107, InclinationDot: -0.00078890,
			MeanLongitudeDot: 58517.81538729, LongPerihelionDot: 0.05679648, LongAscNodeDot: -0.27769418,
		}},
		{Name: "Earth", Kind: KindPlanet, RadiusKm: 6371.0, Elements: orbit.Elements{
			SemiMajorAU: 1.00000261, Eccentricity: 0.01671123, InclinationDeg: -0.00001531,
			MeanLongitudeDeg: 100.46457166, LongPerihelionDeg: 102.93768193, LongAscNodeDeg: 0.0,
			SemiMajorDot: 0.00000562, EccentricityDot: -0.00004392, InclinationDot: -0.01294668,
			MeanLongitudeDot: 35999.37306329, LongPerihelionDot: 0.32327364, LongAscNodeDot: 0.0,
		}},
		{Name: "Mars", Kind: KindPlanet, RadiusKm: 3389.5, Elements: orbit.Elements{
			SemiMajorAU: 1.52371034, Eccentricity: 0.09339410, InclinationDeg: 1.84969142,
			MeanLongitudeDeg: -4.55343205, LongPerihelionDeg: -23.94362959, LongAscNodeDeg: 49.55953891,
			SemiMajorDot: 0.00001847, EccentricityDot: 0.00007882, InclinationDot: -0.00813131,
			MeanLongitudeDot: 19140.30268499, LongPerihelionDot: 0.44441088, LongAscNodeDot: -0.29257343,
		}},
		{Name: "Jupiter", Kind: KindPlanet, RadiusKm: 69911, Elements: orbit.Elements{
			SemiMajorAU: 5.20288700, Eccentricity: 0.04838624, InclinationDeg: 1.30439695,
			MeanLongitudeDeg: 34.39644051, LongPerihelionDeg: 14.72847983, LongAscNodeDeg: 100.47390909,
			SemiMajorDot: -0.00011607, EccentricityDot: -0.00013253, InclinationDot: -0.00183714,
			MeanLongitudeDot: 3034.74612775, LongPerihelionDot: 0.21252668, LongAscNodeDot: 0.20469106,
		}},
		{Name: "Saturn", Kind: KindPlanet, RadiusKm: 58232, Elements: orbit.Elements{
			SemiMajorAU: 9.53667594, Eccentricity: 0.05386179, InclinationDeg: 2.48599187,
			MeanLongitudeDeg: 49.95424423, LongPerihelionDeg: 92.59887831, LongAscNodeDeg: 113.66242448,
			SemiMajorDot: -0.00125060, EccentricityDot: -0.00050991, InclinationDot: 0.00193609,
			MeanLongitudeDot: 1222.49362201, LongPerihelionDot: -0.41897216, LongAscNodeDot: -0.28867794,
		}},
		{Name: "Uranus", Kind: KindPlanet, RadiusKm: 25362, Elements: orbit.Elements{
			SemiMajorAU: 19.18916464, Eccentricity: 0.04725744, InclinationDeg: 0.77263783,
			MeanLongitudeDeg: 313.23810451, LongPerihelionDeg: 170.95427630, LongAscNodeDeg: 74.01692503,
			SemiMajorDot: -0.00196176, EccentricityDot: -0.00004397, InclinationDot: -0.00242939,
			MeanLongitudeDot: 428.48202785, LongPerihelionDot: 0.40805281, LongAscNodeDot: 0.04240589,
		}},
		{Name: "Neptune", Kind: KindPlanet, RadiusKm: 24622, Elements: orbit.Elements{
			SemiMajorAU: 30.06992276, Eccentricity: 0.00859048, InclinationDeg: 1.77004347,
			MeanLongitudeDeg: -55.12002969, LongPerihelionDeg: 44.96476227, LongAscNodeDeg: 131.78422574,
			SemiMajorDot: 0.00026291, EccentricityDot: 0.00005105, InclinationDot: 0.00035372,
			MeanLongitudeDot: 218.45945325, LongPerihelionDot: -0.32241464, LongAscNodeDot: -0.00508664,
		}},

		{Name: "Moon", Kind: KindMoon, Parent: "Earth", RadiusKm: 1737.4, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 384399, Eccentricity: 0.0549, InclinationDeg: 5.145,
			LongAscNodeDeg: 125.08, ArgPeriapsisDeg: 318.15,
			MeanAnomalyAtEpochDeg: 115.3654, MeanMotionDegPerDay: 13.0649929509,
		}},
		{Name: "Phobos", Kind: KindMoon, Parent: "Mars", RadiusKm: 11.1, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 9376, Eccentricity: 0.0151, InclinationDeg: 1.093,
			LongAscNodeDeg: 208.2, ArgPeriapsisDeg: 157.1,
			MeanAnomalyAtEpochDeg: 160.5, MeanMotionDegPerDay: 1128.8444155,
		}},
		{Name: "Deimos", Kind: KindMoon, Parent: "Mars", RadiusKm: 6.2, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 23458, Eccentricity: 0.00033, InclinationDeg: 1.791,
			LongAscNodeDeg: 24.5, ArgPeriapsisDeg: 260.7,
			MeanAnomalyAtEpochDeg: 1.3, MeanMotionDegPerDay: 285.1618790,
		}},
		{Name: "Io", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 1821.5, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 421800, Eccentricity: 0.0041, InclinationDeg: 0.05,
			LongAscNodeDeg: 43.977, ArgPeriapsisDeg: 84.129,
			MeanAnomalyAtEpochDeg: 213.914, MeanMotionDegPerDay: 203.4889538,
		}},
		{Name: "Europa", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 1560.8, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 671100, Eccentricity: 0.0094, InclinationDeg: 0.47,
			LongAscNodeDeg: 219.106, ArgPeriapsisDeg: 88.970,
			MeanAnomalyAtEpochDeg: 222.944, MeanMotionDegPerDay: 101.3747235,
		}},
		{Name: "Ganymede", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 2631.2, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 1070400, Eccentricity: 0.0013, InclinationDeg: 0.21,
			LongAscNodeDeg: 63.552, ArgPeriapsisDeg: 192.417,
			MeanAnomalyAtEpochDeg: 61.571, MeanMotionDegPerDay: 50.3176081,
		}},
		{Name: "Callisto", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 2410.3, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 1882700, Eccentricity: 0.0074, InclinationDeg: 0.51,
			LongAscNodeDeg: 298.848, ArgPeriapsisDeg: 52.643,
			MeanAnomalyAtEpochDeg: 189.919, MeanMotionDegPerDay: 21.5710715,
		}},
		{Name: "Titan", Kind: KindMoon, Parent: "Saturn", RadiusKm: 2574.7, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 1221870, Eccentricity: 0.0288, InclinationDeg: 0.34854,
			LongAscNodeDeg: 28.0212, ArgPeriapsisDeg: 186.5442,
			MeanAnomalyAtEpochDeg: 273.0746, MeanMotionDegPerDay: 22.5770202,
		}},
		{Name: "Triton", Kind: KindMoon, Parent: "Neptune", RadiusKm: 1353.4, Satellite: orbit.SatelliteElements{
			SemiMajorKm: 354759, Eccentricity: 0.000016, InclinationDeg: 156.885,
			LongAscNodeDeg: 177.612, ArgPeriapsisDeg: 237.234,
			// Retrograde: mean motion runs backward.
			MeanAnomalyAtEpochDeg: 212.611, MeanMotionDegPerDay: -61.2572637,
		}},
	}
}
