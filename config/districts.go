package config

import (
	"github.com/paulmach/orb"

	"bkkland/server/internal/models"
)

// BangkokCenter is the default coordinate used when a request carries no
// usable location.
var BangkokCenter = orb.Point{100.5018, 13.7563}

// DistrictCenter pins a district name to its approximate center point.
type DistrictCenter struct {
	Name   string    `json:"name"`
	Center orb.Point `json:"center"`
}

// DistrictCenters is the single canonical district -> center table. The
// resolver and the GeoJSON export both read it; no other copy exists.
var DistrictCenters = []DistrictCenter{
	{Name: "Lat Phrao", Center: orb.Point{100.7324, 13.8133}},
	{Name: "Watthana", Center: orb.Point{100.5608, 13.7373}},
	{Name: "Sai Mai", Center: orb.Point{100.3534, 13.9234}},
	{Name: "Bang Khen", Center: orb.Point{100.6534, 13.8234}},
	{Name: "Prawet", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Khlong Sam Wa", Center: orb.Point{100.7324, 13.8133}},
	{Name: "Phra Khanong", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Bang Khae", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Suan Luang", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Thawi Watthana", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Bang Na", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Bang Khun Thian", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Taling Chan", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Chatuchak", Center: orb.Point{100.5534, 13.8234}},
	{Name: "Huai Khwang", Center: orb.Point{100.5608, 13.7287}},
	{Name: "Nong Chok", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Wang Thonglang", Center: orb.Point{100.6534, 13.8234}},
	{Name: "Min Buri", Center: orb.Point{100.7324, 13.8133}},
	{Name: "Din Daeng", Center: orb.Point{100.5608, 13.7287}},
	{Name: "Lat Krabang", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Bueng Kum", Center: orb.Point{100.6534, 13.8234}},
	{Name: "Don Mueang", Center: orb.Point{100.5534, 13.9234}},
	{Name: "Saphan Sung", Center: orb.Point{100.6000, 13.7000}},
	{Name: "Bang Kapi", Center: orb.Point{100.6534, 13.8234}},
	{Name: "Phasi Charoen", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Khlong Toei", Center: orb.Point{100.5608, 13.7287}},
	{Name: "Khan Na Yao", Center: orb.Point{100.6534, 13.8234}},
	{Name: "Lak Si", Center: orb.Point{100.4534, 13.9234}},
	{Name: "Nong Khaem", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Bang Phlat", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Phaya Thai", Center: orb.Point{100.5608, 13.7287}},
	{Name: "Sathon", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Bang Bon", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Bang Sue", Center: orb.Point{100.5534, 13.8234}},
	{Name: "Thon Buri", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Thung Khru", Center: orb.Point{100.5347, 13.7287}},
	{Name: "Yan Nawa", Center: orb.Point{100.5347, 13.7287}},
}

// GetDistrictCenter returns the center for a district name, or the Bangkok
// center when the district is unknown.
func GetDistrictCenter(name string) orb.Point {
	key := models.NormalizeDistrict(name)
	for _, dc := range DistrictCenters {
		if models.NormalizeDistrict(dc.Name) == key {
			return dc.Center
		}
	}
	return BangkokCenter
}
