// Package landmarks carries the static reference tables behind the
// proximity scorer and the factor analysis engine: weighted city landmarks,
// transit stations, shopping centers, schools, flood-risk zones and the
// zoning tables. Everything here is read-only after process start.
package landmarks

import (
	"github.com/paulmach/orb"

	"bkkland/server/internal/models"
)

// Landmark category names used by the proximity scorer.
const (
	CategoryTransportation = "transportation"
	CategoryShopping       = "shopping"
	CategoryTourism        = "tourism"
	CategoryBusiness       = "business"
	CategoryEducation      = "education"
)

// Category holds the scoring parameters for one landmark class.
type Category struct {
	Weight        float64
	MaxMultiplier float64
}

// ProximityCategories weights the landmark classes for the location-premium
// score. Transportation dominates; education contributes least.
var ProximityCategories = map[string]Category{
	CategoryTransportation: {Weight: 0.30, MaxMultiplier: 1.25},
	CategoryShopping:       {Weight: 0.20, MaxMultiplier: 1.15},
	CategoryTourism:        {Weight: 0.15, MaxMultiplier: 1.10},
	CategoryBusiness:       {Weight: 0.25, MaxMultiplier: 1.20},
	CategoryEducation:      {Weight: 0.10, MaxMultiplier: 1.05},
}

// Landmark is a named point with a scoring category.
type Landmark struct {
	Name     string
	Location orb.Point
	Category string
}

// ProximityLandmarks is the citywide table consulted by the proximity
// scorer.
var ProximityLandmarks = []Landmark{
	{Name: "Suvarnabhumi Airport", Location: orb.Point{100.7501, 13.6900}, Category: CategoryTransportation},
	{Name: "Don Mueang Airport", Location: orb.Point{100.6068, 13.9126}, Category: CategoryTransportation},
	{Name: "BTS Siam", Location: orb.Point{100.5347, 13.7456}, Category: CategoryTransportation},
	{Name: "BTS Asok", Location: orb.Point{100.5608, 13.7373}, Category: CategoryTransportation},
	{Name: "CentralWorld", Location: orb.Point{100.5397, 13.7466}, Category: CategoryShopping},
	{Name: "Terminal 21", Location: orb.Point{100.5608, 13.7373}, Category: CategoryShopping},
	{Name: "Chatuchak Weekend Market", Location: orb.Point{100.5534, 13.8234}, Category: CategoryShopping},
	{Name: "Grand Palace", Location: orb.Point{100.4913, 13.7500}, Category: CategoryTourism},
	{Name: "Lumphini Park", Location: orb.Point{100.5444, 13.7311}, Category: CategoryTourism},
	{Name: "Siam Paragon", Location: orb.Point{100.5347, 13.7466}, Category: CategoryShopping},
	{Name: "MBK Center", Location: orb.Point{100.5347, 13.7456}, Category: CategoryShopping},
	{Name: "Silom Road", Location: orb.Point{100.5347, 13.7287}, Category: CategoryBusiness},
	{Name: "Sukhumvit Road", Location: orb.Point{100.5608, 13.7373}, Category: CategoryBusiness},
	{Name: "ICONSIAM", Location: orb.Point{100.4888, 13.7439}, Category: CategoryShopping},
	{Name: "Central Embassy", Location: orb.Point{100.5608, 13.7373}, Category: CategoryShopping},
}

// TransitStations feeds the transport factor (BTS Sukhumvit line, city to
// Samut Prakan).
var TransitStations = []Landmark{
	{Name: "Sukhumvit", Location: orb.Point{100.5606, 13.7381}, Category: CategoryTransportation},
	{Name: "Asok", Location: orb.Point{100.5608, 13.7374}, Category: CategoryTransportation},
	{Name: "Phrom Phong", Location: orb.Point{100.5612, 13.7364}, Category: CategoryTransportation},
	{Name: "Thong Lo", Location: orb.Point{100.5616, 13.7354}, Category: CategoryTransportation},
	{Name: "Ekkamai", Location: orb.Point{100.5620, 13.7344}, Category: CategoryTransportation},
	{Name: "Phra Khanong", Location: orb.Point{100.5624, 13.7334}, Category: CategoryTransportation},
	{Name: "On Nut", Location: orb.Point{100.5628, 13.7324}, Category: CategoryTransportation},
	{Name: "Bang Chak", Location: orb.Point{100.5632, 13.7314}, Category: CategoryTransportation},
	{Name: "Punnawithi", Location: orb.Point{100.5636, 13.7304}, Category: CategoryTransportation},
	{Name: "Udom Suk", Location: orb.Point{100.5640, 13.7294}, Category: CategoryTransportation},
	{Name: "Bang Na", Location: orb.Point{100.5644, 13.7284}, Category: CategoryTransportation},
	{Name: "Bearing", Location: orb.Point{100.5648, 13.7274}, Category: CategoryTransportation},
	{Name: "Samrong", Location: orb.Point{100.5652, 13.7264}, Category: CategoryTransportation},
	{Name: "Pu Chao", Location: orb.Point{100.5656, 13.7254}, Category: CategoryTransportation},
	{Name: "Chang Erawan", Location: orb.Point{100.5660, 13.7244}, Category: CategoryTransportation},
	{Name: "Royal Thai Naval Academy", Location: orb.Point{100.5664, 13.7234}, Category: CategoryTransportation},
	{Name: "Pak Nam", Location: orb.Point{100.5668, 13.7224}, Category: CategoryTransportation},
	{Name: "Sai Luat", Location: orb.Point{100.5672, 13.7214}, Category: CategoryTransportation},
	{Name: "Kheha", Location: orb.Point{100.5676, 13.7204}, Category: CategoryTransportation},
}

// ShoppingCenters feeds the shopping factor.
var ShoppingCenters = []Landmark{
	{Name: "Siam Paragon", Location: orb.Point{100.5347, 13.7466}, Category: CategoryShopping},
	{Name: "CentralWorld", Location: orb.Point{100.5397, 13.7467}, Category: CategoryShopping},
	{Name: "MBK Center", Location: orb.Point{100.5347, 13.7457}, Category: CategoryShopping},
	{Name: "Terminal 21", Location: orb.Point{100.5608, 13.7374}, Category: CategoryShopping},
	{Name: "EmQuartier", Location: orb.Point{100.5612, 13.7364}, Category: CategoryShopping},
	{Name: "Emporium", Location: orb.Point{100.5612, 13.7364}, Category: CategoryShopping},
	{Name: "Central Embassy", Location: orb.Point{100.5397, 13.7467}, Category: CategoryShopping},
	{Name: "Central Chidlom", Location: orb.Point{100.5397, 13.7467}, Category: CategoryShopping},
	{Name: "Central Ladprao", Location: orb.Point{100.5018, 13.7563}, Category: CategoryShopping},
	{Name: "Central Rama 9", Location: orb.Point{100.5018, 13.7563}, Category: CategoryShopping},
	{Name: "Central Westgate", Location: orb.Point{100.5018, 13.7563}, Category: CategoryShopping},
	{Name: "CentralPlaza Pinklao", Location: orb.Point{100.5018, 13.7563}, Category: CategoryShopping},
	{Name: "CentralPlaza EastVille", Location: orb.Point{100.5018, 13.7563}, Category: CategoryShopping},
}

// Schools feeds the education factor (international schools and
// universities).
var Schools = []Landmark{
	{Name: "Bangkok Patana School", Location: orb.Point{100.5347, 13.7466}, Category: CategoryEducation},
	{Name: "International School Bangkok", Location: orb.Point{100.5397, 13.7467}, Category: CategoryEducation},
	{Name: "NIST International School", Location: orb.Point{100.5347, 13.7457}, Category: CategoryEducation},
	{Name: "Bangkok International Preparatory", Location: orb.Point{100.5608, 13.7374}, Category: CategoryEducation},
	{Name: "Shrewsbury International School", Location: orb.Point{100.5612, 13.7364}, Category: CategoryEducation},
	{Name: "Harrow International School", Location: orb.Point{100.5612, 13.7364}, Category: CategoryEducation},
	{Name: "Ruamrudee International School", Location: orb.Point{100.5397, 13.7467}, Category: CategoryEducation},
	{Name: "St. Andrews International School", Location: orb.Point{100.5397, 13.7467}, Category: CategoryEducation},
	{Name: "Bangkok Christian College", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
	{Name: "Assumption College", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
	{Name: "Chulalongkorn University", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
	{Name: "Thammasat University", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
	{Name: "Kasetsart University", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
	{Name: "Mahidol University", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
	{Name: "Srinakharinwirot University", Location: orb.Point{100.5018, 13.7563}, Category: CategoryEducation},
}

// Flood risk tiers.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// FloodZone is a circular risk area. RadiusKm is a great-circle distance.
type FloodZone struct {
	Center   orb.Point
	RadiusKm float64
	Risk     string
}

// DefaultFloodZones is the built-in table used when no shapefile is
// configured.
var DefaultFloodZones = []FloodZone{
	{Center: orb.Point{100.5018, 13.7563}, RadiusKm: 2.0, Risk: RiskHigh},
	{Center: orb.Point{100.5347, 13.7466}, RadiusKm: 1.5, Risk: RiskMedium},
	{Center: orb.Point{100.5608, 13.7374}, RadiusKm: 1.0, Risk: RiskLow},
}

// Zone type names used by the zoning factor.
const (
	ZoneResidential  = "residential"
	ZoneCommercial   = "commercial"
	ZoneMixed        = "mixed"
	ZoneIndustrial   = "industrial"
	ZoneAgricultural = "agricultural"
	ZoneConservation = "conservation"
)

// ZoningMultipliers maps a zone type to its price impact.
var ZoningMultipliers = map[string]float64{
	ZoneResidential:  1.00,
	ZoneCommercial:   1.30,
	ZoneMixed:        1.15,
	ZoneIndustrial:   0.70,
	ZoneAgricultural: 0.50,
	ZoneConservation: 0.80,
}

// HeightRestrictions is display-only metadata keyed by zone label.
var HeightRestrictions = map[string]models.HeightRestriction{
	"airport":        {MaxHeightM: 45, Multiplier: 0.8},
	"historical":     {MaxHeightM: 30, Multiplier: 0.9},
	ZoneResidential:  {MaxHeightM: 60, Multiplier: 1.0},
	ZoneCommercial:   {MaxHeightM: 120, Multiplier: 1.2},
	ZoneMixed:        {MaxHeightM: 90, Multiplier: 1.1},
}
