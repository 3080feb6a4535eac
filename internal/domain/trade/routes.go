package trade

import "strings"

// knownRoute is one pre-measured India-origin corridor used when the
// distance provider is unavailable.
type knownRoute struct {
	from string
	to   string
	km   float64
}

var knownRoutes = []knownRoute{
	{"indore", "delhi", 810},
	{"indore", "mumbai", 590},
	{"indore", "jaipur", 560},
	{"delhi", "mumbai", 1400},
	{"delhi", "kolkata", 1500},
	{"nagpur", "mumbai", 820},
	{"jaipur", "delhi", 280},
	{"mumbai", "dubai", 1930},
	{"mumbai", "singapore", 3900},
	{"mumbai", "london", 7200},
	{"delhi", "dubai", 2200},
	{"delhi", "london", 6700},
	{"chennai", "singapore", 2900},
	{"chennai", "colombo", 690},
	{"kolkata", "dhaka", 250},
	{"kolkata", "kathmandu", 640},
}

// routeDistanceKM matches both endpoints by case-insensitive containment in
// either direction; defaultKM covers everything else.
func routeDistanceKM(source, destination string, defaultKM float64) float64 {
	src := strings.ToLower(strings.TrimSpace(source))
	dst := strings.ToLower(strings.TrimSpace(destination))
	for _, r := range knownRoutes {
		forward := strings.Contains(src, r.from) && strings.Contains(dst, r.to)
		reverse := strings.Contains(src, r.to) && strings.Contains(dst, r.from)
		if forward || reverse {
			return r.km
		}
	}
	return defaultKM
}
