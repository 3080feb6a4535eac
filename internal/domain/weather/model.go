package weather

// Snapshot is the normalized weather view consumed by the advisory and
// dashboard domains: current conditions plus a short daily forecast.
type Snapshot struct {
	Location string     `json:"location"`
	Country  string     `json:"country"`
	Current  Conditions `json:"current"`
	Astro    Astro      `json:"astro"`
	Forecast []Day      `json:"forecast"`
}

// Conditions captures the live observation.
type Conditions struct {
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon,omitempty"`
	Humidity  float64 `json:"humidity"`
	WindKPH   float64 `json:"wind_kph,omitempty"`
	PrecipMM  float64 `json:"precip_mm"`
}

// Astro carries sunrise/sunset for the first forecast day.
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Day is one simplified forecast day.
type Day struct {
	Date          string  `json:"date"`
	AvgTempC      float64 `json:"avgtemp_c"`
	TotalPrecipMM float64 `json:"totalprecip_mm"`
	AvgHumidity   float64 `json:"avghumidity"`
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon,omitempty"`
	RainChance    float64 `json:"daily_chance_of_rain,omitempty"`
}

// DefaultSnapshot is the low-information substitute used whenever the
// weather provider is unreachable.
func DefaultSnapshot(location string) Snapshot {
	return Snapshot{
		Location: location,
		Country:  "India",
		Current: Conditions{
			TempC:     30,
			Condition: "Clear",
			Humidity:  60,
		},
		Astro: Astro{
			Sunrise: "06:30 AM",
			Sunset:  "05:45 PM",
		},
		Forecast: []Day{},
	}
}
