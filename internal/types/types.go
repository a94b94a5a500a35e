package types

// State is an administrative region as served by the backend reference data.
type State struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StateCode string `json:"stateCode"`
}

// District belongs to exactly one state. Reference data, immutable.
type District struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DistrictCode string `json:"districtCode"`
	StateID      int64  `json:"stateId"`
	StateName    string `json:"stateName"`
}

// PerformanceLevel is an opaque classification computed by the backend.
// The client maps it to a display tier but never recomputes it.
type PerformanceLevel string

const (
	LevelAboveAverage PerformanceLevel = "ABOVE_AVERAGE"
	LevelModerate     PerformanceLevel = "MODERATE"
	LevelBelowAverage PerformanceLevel = "BELOW_AVERAGE"
)

// Tier maps a performance level to a UI severity tier.
func (l PerformanceLevel) Tier() string {
	switch l {
	case LevelAboveAverage:
		return "success"
	case LevelModerate:
		return "warning"
	default:
		return "danger"
	}
}

// Performance is one district's metrics for one reporting period.
type Performance struct {
	ID                    int64            `json:"id"`
	DistrictID            int64            `json:"districtId"`
	DistrictName          string           `json:"districtName"`
	MonthName             string           `json:"monthName"`
	FinYear               string           `json:"finYear"`
	TotalHouseholdsWorked int64            `json:"totalHouseholdsWorked"`
	AverageDaysEmployment float64          `json:"averageDaysEmployment"`
	TotalWages            float64          `json:"totalWages"`
	OngoingWorks          int64            `json:"ongoingWorks"`
	CompletedWorks        int64            `json:"completedWorks"`
	TotalExpenditure      float64          `json:"totalExpenditure"`
	AvgWageRate           float64          `json:"avgWageRate"`
	LastUpdated           string           `json:"lastUpdated"`
	PerformanceLevel      PerformanceLevel `json:"performanceLevel"`
}

// ComparisonMetrics holds month-over-month deltas. Change fields are
// percentages except ProjectsChange, which is an absolute count.
type ComparisonMetrics struct {
	HouseholdsChange float64 `json:"householdsChange"`
	DaysWorkedChange float64 `json:"daysWorkedChange"`
	WagesChange      float64 `json:"wagesChange"`
	ProjectsChange   float64 `json:"projectsChange"`
}

// Comparison pairs the current period with the previous one. Previous and
// Metrics are both nil when no prior period exists; that is a valid state,
// not an error.
type Comparison struct {
	Current  Performance        `json:"current"`
	Previous *Performance       `json:"previous"`
	Metrics  *ComparisonMetrics `json:"comparison"`
}

// Consistent reports whether the previous/metrics pairing invariant holds:
// one is never present without the other.
func (c Comparison) Consistent() bool {
	return (c.Previous == nil) == (c.Metrics == nil)
}

// Coordinates is a raw device position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodeAddress carries the raw address components a geocoding provider
// returns. Only a subset is ever populated.
type GeocodeAddress struct {
	County        string `json:"county,omitempty"`
	StateDistrict string `json:"state_district,omitempty"`
	City          string `json:"city,omitempty"`
	Town          string `json:"town,omitempty"`
	Village       string `json:"village,omitempty"`
	State         string `json:"state,omitempty"`
	Country       string `json:"country,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
}

// GeocodeResult is the normalized reverse-geocoding answer. Transient:
// consumed immediately by the detection flow, never persisted.
type GeocodeResult struct {
	District string         `json:"district"`
	State    string         `json:"state"`
	Lat      float64        `json:"lat"`
	Lon      float64        `json:"lon"`
	Address  GeocodeAddress `json:"address"`
}

// Envelope is the common wrapper on every backend response except /health.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}
