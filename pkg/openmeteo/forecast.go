package openmeteo

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentRequest selects a location and the current-conditions variables
// to return
type CurrentRequest struct {
	Latitude  float64
	Longitude float64
	Current   []string // Variables, such as "temperature_2m"
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TYPES

// Forecast is the response from the forecast endpoint. Fields are
// pointers where the service may omit them.
type Forecast struct {
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Elevation    float64           `json:"elevation,omitempty"`
	GenerationMs float64           `json:"generationtime_ms,omitempty"`
	UTCOffset    int               `json:"utc_offset_seconds,omitempty"`
	Timezone     string            `json:"timezone,omitempty"`
	CurrentUnits map[string]string `json:"current_units,omitempty"`
	Current      *Current          `json:"current,omitempty"`
}

var _ client.Unmarshaler = (*Forecast)(nil)

// Current conditions. Only the requested variables are present.
type Current struct {
	Time          string   `json:"time,omitempty"`
	Interval      int      `json:"interval,omitempty"`
	Temperature2m *float64 `json:"temperature_2m,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Air temperature at 2 meters above ground, in Celsius
	VarTemperature2m = "temperature_2m"
)

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts CurrentRequest to URL query parameters
func (r CurrentRequest) Values() url.Values {
	result := url.Values{}
	result.Set("latitude", formatFloat(r.Latitude))
	result.Set("longitude", formatFloat(r.Longitude))
	if len(r.Current) > 0 {
		result.Set("current", strings.Join(r.Current, ","))
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

// Unmarshal decodes the response body as JSON whatever the content type
func (f *Forecast) Unmarshal(_ http.Header, r io.Reader) error {
	return json.NewDecoder(r).Decode(f)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Forecast) String() string {
	return types.Stringify(f)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// formatFloat renders a float in the shortest form which round-trips
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
