package tool

import (
	"context"
	"fmt"
	"strings"
)

type conditions struct {
	Temp      int
	Condition string
	Humidity  int
}

// Weather reports canned conditions for a few well-known cities. It stands
// in for a real weather API in demos and tests.
type Weather struct {
	data map[string]conditions
}

// NewWeather creates a weather tool with the built-in city table.
func NewWeather() *Weather {
	return &Weather{
		data: map[string]conditions{
			"new york": {Temp: 72, Condition: "Sunny", Humidity: 45},
			"london":   {Temp: 63, Condition: "Cloudy", Humidity: 70},
			"tokyo":    {Temp: 75, Condition: "Clear", Humidity: 55},
			"paris":    {Temp: 68, Condition: "Partly Cloudy", Humidity: 60},
		},
	}
}

// Name returns the name of the tool.
func (w *Weather) Name() string {
	return "weather"
}

// Description returns the description of the tool.
func (w *Weather) Description() string {
	return "Gets weather information for a location. Input should be a city name."
}

// Call looks the city up case-insensitively. Unknown cities get a soft
// "not available" answer rather than an error.
func (w *Weather) Call(ctx context.Context, city string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	c, ok := w.data[key]
	if !ok {
		return fmt.Sprintf("Weather data not available for %s", city), nil
	}
	return fmt.Sprintf("Weather in %s: %s, %d°F, Humidity: %d%%",
		titleCase(key), c.Condition, c.Temp, c.Humidity), nil
}

// titleCase capitalizes the first letter of each word. strings.Title is
// deprecated and the city names here are plain ASCII.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
