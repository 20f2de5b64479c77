package types

// VocabularyVersion identifies the closed tag vocabulary shared by the catalog,
// the destination table and inference prompts. Bump it whenever a value is added or removed.
const VocabularyVersion = "2025.1"

type GeoType string

const (
	GeoUrban     GeoType = "urban"
	GeoRural     GeoType = "rural"
	GeoCoastal   GeoType = "coastal"
	GeoDesert    GeoType = "desert"
	GeoMountain  GeoType = "mountain"
	GeoForest    GeoType = "forest"
	GeoIsland    GeoType = "island"
	GeoTropical  GeoType = "tropical"
	GeoLakeside  GeoType = "lakeside"
	GeoRiverside GeoType = "riverside"
	GeoVolcanic  GeoType = "volcanic"
	GeoPlains    GeoType = "plains"
	GeoLimestone GeoType = "limestone"
	GeoArctic    GeoType = "arctic"
)

var GeoTypes = NewSet(
	GeoUrban, GeoRural, GeoCoastal, GeoDesert, GeoMountain, GeoForest, GeoIsland,
	GeoTropical, GeoLakeside, GeoRiverside, GeoVolcanic, GeoPlains, GeoLimestone, GeoArctic,
)

type GeoRegion string

const (
	RegionEastAsia        GeoRegion = "east_asia"
	RegionSoutheastAsia   GeoRegion = "southeast_asia"
	RegionSouthAsia       GeoRegion = "south_asia"
	RegionCentralAsia     GeoRegion = "central_asia"
	RegionWesternEurope   GeoRegion = "western_europe"
	RegionEasternEurope   GeoRegion = "eastern_europe"
	RegionNorthernEurope  GeoRegion = "northern_europe"
	RegionSouthernEurope  GeoRegion = "southern_europe"
	RegionMiddleEast      GeoRegion = "middle_east"
	RegionNorthAfrica     GeoRegion = "north_africa"
	RegionSubSaharaAfrica GeoRegion = "sub_saharan_africa"
	RegionNorthAmerica    GeoRegion = "north_america"
	RegionCentralAmerica  GeoRegion = "central_america"
	RegionSouthAmerica    GeoRegion = "south_america"
	RegionCaribbean       GeoRegion = "caribbean"
	RegionOceania         GeoRegion = "oceania"
	RegionPacificIslands  GeoRegion = "pacific_islands"

	// RegionGlobal is only valid as a cuisine home region.
	RegionGlobal GeoRegion = "global"
)

var GeoRegions = NewSet(
	RegionEastAsia, RegionSoutheastAsia, RegionSouthAsia, RegionCentralAsia,
	RegionWesternEurope, RegionEasternEurope, RegionNorthernEurope, RegionSouthernEurope,
	RegionMiddleEast, RegionNorthAfrica, RegionSubSaharaAfrica,
	RegionNorthAmerica, RegionCentralAmerica, RegionSouthAmerica, RegionCaribbean,
	RegionOceania, RegionPacificIslands,
)

type ClimateType string

const (
	ClimateTropical      ClimateType = "tropical"
	ClimateSubtropical   ClimateType = "subtropical"
	ClimateMediterranean ClimateType = "mediterranean"
	ClimateContinental   ClimateType = "continental"
	ClimateOceanic       ClimateType = "oceanic"
	ClimateDesert        ClimateType = "desert"
	ClimateSemiArid      ClimateType = "semi_arid"
	ClimateSubarctic     ClimateType = "subarctic"
	ClimateArctic        ClimateType = "arctic"
	ClimateHighland      ClimateType = "highland"
	ClimateMonsoon       ClimateType = "monsoon"
)

var ClimateTypes = NewSet(
	ClimateTropical, ClimateSubtropical, ClimateMediterranean, ClimateContinental, ClimateOceanic,
	ClimateDesert, ClimateSemiArid, ClimateSubarctic, ClimateArctic, ClimateHighland, ClimateMonsoon,
)

type WeatherCharacteristic string

var WeatherCharacteristics = NewSet[WeatherCharacteristic](
	"sunny_most_year", "rainy_season", "snowy_winters", "mild_year_round", "extreme_heat_summer",
	"extreme_cold_winter", "humid", "dry", "windy", "unpredictable",
)

// SeasonalFeature doubles as the special-period tag: periods detected from the
// calendar are matched against a destination's seasonal features.
type SeasonalFeature string

const (
	PeriodCherryBlossom    SeasonalFeature = "cherry_blossom"
	PeriodAutumnFoliage    SeasonalFeature = "autumn_foliage"
	PeriodChristmas        SeasonalFeature = "christmas_period"
	PeriodEaster           SeasonalFeature = "easter"
	PeriodRamadan          SeasonalFeature = "ramadan"
	PeriodSkiSeason        SeasonalFeature = "ski_season"
	PeriodSummerHolidays   SeasonalFeature = "summer_holidays"
	PeriodWinterHolidays   SeasonalFeature = "winter_holidays"
	PeriodHalloween        SeasonalFeature = "halloween"
	PeriodLunarNewYear     SeasonalFeature = "lunar_new_year"
	PeriodMonsoonAvoid     SeasonalFeature = "monsoon_avoid"
	PeriodNorthernLights   SeasonalFeature = "northern_lights"
	PeriodWinterFestivals  SeasonalFeature = "winter_festivals"
	PeriodTulipSeason      SeasonalFeature = "tulip_season"
	PeriodSpringFestivals  SeasonalFeature = "spring_festivals"
	PeriodBeachSeason      SeasonalFeature = "beach_season"
	PeriodMidnightSun      SeasonalFeature = "midnight_sun"
	PeriodSummerFestivals  SeasonalFeature = "summer_festivals"
	PeriodOutdoorConcerts  SeasonalFeature = "outdoor_concerts"
	PeriodHarvestFestivals SeasonalFeature = "harvest_festivals"
	PeriodWineHarvest      SeasonalFeature = "wine_harvest"
	PeriodOktoberfest      SeasonalFeature = "oktoberfest"
	PeriodIceHotels        SeasonalFeature = "ice_hotels"
	PeriodSnowyLandscapes  SeasonalFeature = "snowy_landscapes"
)

var SeasonalFeatures = NewSet(
	PeriodCherryBlossom, PeriodAutumnFoliage, PeriodChristmas, PeriodEaster, PeriodRamadan,
	PeriodSkiSeason, PeriodSummerHolidays, PeriodWinterHolidays, PeriodHalloween, PeriodLunarNewYear,
	PeriodMonsoonAvoid, PeriodNorthernLights, PeriodWinterFestivals, PeriodTulipSeason,
	PeriodSpringFestivals, PeriodBeachSeason, PeriodMidnightSun, PeriodSummerFestivals,
	PeriodOutdoorConcerts, PeriodHarvestFestivals, PeriodWineHarvest, PeriodOktoberfest,
	PeriodIceHotels, PeriodSnowyLandscapes,
)

type Infrastructure string

var Infrastructures = NewSet[Infrastructure]("developed", "developing", "remote", "adventure_infrastructure")

type TourismCharacteristic string

var TourismCharacteristics = NewSet[TourismCharacteristic](
	"beach_destination", "ski_resort", "cultural_hub", "historical_city", "party_destination",
	"foodie_destination", "shopping_destination", "adventure_base", "wellness_destination", "business_hub",
	"romantic_destination", "family_destination", "backpacker_friendly", "luxury_destination",
	"spiritual_center", "art_capital", "music_city", "tech_hub", "university_town",
)

type SpecialFeature string

var SpecialFeatures = NewSet[SpecialFeature](
	"unesco_sites", "theme_parks", "casinos", "cannabis_legal", "lgbtq_friendly", "nightlife_hub",
	"wine_region", "dive_sites", "surf_spots", "safari_access", "ancient_ruins", "royal_heritage",
	"religious_significance", "film_location", "cruise_port", "hot_springs",
)

type Season string

const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonAutumn    Season = "autumn"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all_season"
)

var Seasons = NewSet(SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllSeason)

// Opposite returns the season on the other side of the equator.
func (s Season) Opposite() Season {
	switch s {
	case SeasonSummer:
		return SeasonWinter
	case SeasonWinter:
		return SeasonSummer
	case SeasonSpring:
		return SeasonAutumn
	case SeasonAutumn:
		return SeasonSpring
	}
	return s
}

type WeatherRequirement string

const (
	WarmWeatherRequired WeatherRequirement = "warm_weather_required"
	ColdWeatherRequired WeatherRequirement = "cold_weather_required"
)

var WeatherRequirements = NewSet(WarmWeatherRequired, ColdWeatherRequired)

type Vibe string

const (
	VibeBucketList      Vibe = "bucket_list"
	VibeInstagramWorthy Vibe = "instagram_worthy"
)

var Vibes = NewSet(VibeBucketList, VibeInstagramWorthy, "relaxing", "adventurous", "romantic", "hidden_gem", "lively", "cozy")

type Hemisphere string

const (
	Northern Hemisphere = "northern"
	Southern Hemisphere = "southern"
)

// Dimension describes one tag dimension of the destination vocabulary.
type Dimension struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
	Single bool     `json:"single"` // at most one value expected
}

// Vocabulary is the permitted destination tag vocabulary, in prompt order.
type Vocabulary struct {
	Version    string      `json:"version"`
	Dimensions []Dimension `json:"dimensions"`
}

// DestinationVocabulary returns the dimensions a destination profile may carry.
func DestinationVocabulary() Vocabulary {
	return Vocabulary{
		Version: VocabularyVersion,
		Dimensions: []Dimension{
			{Name: DimGeoType, Values: toStrings(GeoTypes)},
			{Name: DimGeoRegion, Values: toStrings(GeoRegions), Single: true},
			{Name: DimClimateType, Values: toStrings(ClimateTypes), Single: true},
			{Name: DimWeatherCharacteristics, Values: toStrings(WeatherCharacteristics)},
			{Name: DimSeasonalFeatures, Values: toStrings(SeasonalFeatures)},
			{Name: DimInfrastructure, Values: toStrings(Infrastructures), Single: true},
			{Name: DimTourismCharacteristics, Values: toStrings(TourismCharacteristics)},
			{Name: DimSpecialFeatures, Values: toStrings(SpecialFeatures)},
		},
	}
}

// Tag dimension names as they appear in data files and inference output.
const (
	DimGeoType                = "geo_type"
	DimGeoRegion              = "geo_region"
	DimClimateType            = "climate_type"
	DimWeatherCharacteristics = "weather_characteristics"
	DimSeasonalFeatures       = "seasonal_features"
	DimInfrastructure         = "infrastructure"
	DimTourismCharacteristics = "tourism_characteristics"
	DimSpecialFeatures        = "special_features"
)

func toStrings[T ~string](s Set[T]) []string {
	out := make([]string, 0, len(s))
	for _, v := range s.Sorted() {
		out = append(out, string(v))
	}
	return out
}
