package filter

import "github.com/FACorreiaa/go-tourism-filter/internal/types"

// neighbourRegions lists regions whose cuisines travel well into each other.
// Lookups check both directions, so the relation is symmetric even where an
// entry lists only one side.
var neighbourRegions = map[types.GeoRegion]types.Set[types.GeoRegion]{
	types.RegionEasternEurope: types.NewSet(types.RegionWesternEurope, types.RegionNorthernEurope,
		types.RegionSouthernEurope, types.RegionCentralAsia, types.RegionMiddleEast),
	types.RegionWesternEurope: types.NewSet(types.RegionEasternEurope, types.RegionNorthernEurope,
		types.RegionSouthernEurope, types.RegionNorthAfrica),
	types.RegionNorthernEurope: types.NewSet(types.RegionWesternEurope, types.RegionEasternEurope),
	types.RegionSouthernEurope: types.NewSet(types.RegionWesternEurope, types.RegionEasternEurope,
		types.RegionNorthAfrica, types.RegionMiddleEast),
	types.RegionMiddleEast: types.NewSet(types.RegionEasternEurope, types.RegionSouthernEurope,
		types.RegionNorthAfrica, types.RegionCentralAsia, types.RegionSouthAsia),
	types.RegionCentralAsia: types.NewSet(types.RegionEasternEurope, types.RegionMiddleEast,
		types.RegionSouthAsia, types.RegionEastAsia),
	types.RegionEastAsia:      types.NewSet(types.RegionSoutheastAsia, types.RegionCentralAsia, types.RegionOceania),
	types.RegionSoutheastAsia: types.NewSet(types.RegionEastAsia, types.RegionSouthAsia, types.RegionOceania),
	types.RegionSouthAsia:     types.NewSet(types.RegionMiddleEast, types.RegionCentralAsia, types.RegionSoutheastAsia),
	types.RegionNorthAfrica: types.NewSet(types.RegionWesternEurope, types.RegionSouthernEurope,
		types.RegionMiddleEast, types.RegionSubSaharaAfrica),
	types.RegionSubSaharaAfrica: types.NewSet(types.RegionNorthAfrica, types.RegionMiddleEast),
	types.RegionNorthAmerica:    types.NewSet(types.RegionCentralAmerica, types.RegionCaribbean),
	types.RegionCentralAmerica:  types.NewSet(types.RegionNorthAmerica, types.RegionSouthAmerica, types.RegionCaribbean),
	types.RegionSouthAmerica:    types.NewSet(types.RegionCentralAmerica, types.RegionCaribbean),
	types.RegionCaribbean:       types.NewSet(types.RegionNorthAmerica, types.RegionCentralAmerica, types.RegionSouthAmerica),
	types.RegionOceania:         types.NewSet(types.RegionEastAsia, types.RegionSoutheastAsia, types.RegionPacificIslands),
	types.RegionPacificIslands:  types.NewSet(types.RegionOceania, types.RegionSoutheastAsia),
}

// Neighbours reports whether two distinct regions border each other.
func Neighbours(a, b types.GeoRegion) bool {
	if a == b {
		return false
	}
	return neighbourRegions[a].Has(b) || neighbourRegions[b].Has(a)
}
