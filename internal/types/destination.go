package types

import (
	"fmt"
	"strings"
)

// DestinationTags holds the descriptive profile of a destination. Every
// dimension is always present; use Sanitize to guarantee non-nil sets.
type DestinationTags struct {
	GeoType                Set[GeoType]               `json:"geo_type"`
	GeoRegion              Set[GeoRegion]             `json:"geo_region"`
	ClimateType            Set[ClimateType]           `json:"climate_type"`
	WeatherCharacteristics Set[WeatherCharacteristic] `json:"weather_characteristics"`
	SeasonalFeatures       Set[SeasonalFeature]       `json:"seasonal_features"`
	Infrastructure         Set[Infrastructure]        `json:"infrastructure"`
	TourismCharacteristics Set[TourismCharacteristic] `json:"tourism_characteristics"`
	SpecialFeatures        Set[SpecialFeature]        `json:"special_features"`
}

// Sanitize restricts every dimension to the vocabulary and fills missing
// dimensions with empty sets. Dropped values are returned as "dimension:value".
func (t DestinationTags) Sanitize() (DestinationTags, []string) {
	var dropped []string
	var out DestinationTags
	out.GeoType, dropped = restrictInto(t.GeoType, GeoTypes, DimGeoType, dropped)
	out.GeoRegion, dropped = restrictInto(t.GeoRegion, GeoRegions, DimGeoRegion, dropped)
	out.ClimateType, dropped = restrictInto(t.ClimateType, ClimateTypes, DimClimateType, dropped)
	out.WeatherCharacteristics, dropped = restrictInto(t.WeatherCharacteristics, WeatherCharacteristics, DimWeatherCharacteristics, dropped)
	out.SeasonalFeatures, dropped = restrictInto(t.SeasonalFeatures, SeasonalFeatures, DimSeasonalFeatures, dropped)
	out.Infrastructure, dropped = restrictInto(t.Infrastructure, Infrastructures, DimInfrastructure, dropped)
	out.TourismCharacteristics, dropped = restrictInto(t.TourismCharacteristics, TourismCharacteristics, DimTourismCharacteristics, dropped)
	out.SpecialFeatures, dropped = restrictInto(t.SpecialFeatures, SpecialFeatures, DimSpecialFeatures, dropped)
	return out, dropped
}

// Validate fails when any value lies outside the vocabulary.
func (t DestinationTags) Validate() error {
	if _, dropped := t.Sanitize(); len(dropped) > 0 {
		return fmt.Errorf("unknown destination tags: %s", strings.Join(dropped, ", "))
	}
	return nil
}

// DestinationTagsFromMap builds tags from loosely typed dimension -> values
// input (inference output), dropping unknown dimensions and values.
func DestinationTagsFromMap(raw map[string][]string) (DestinationTags, []string) {
	t := DestinationTags{
		GeoType:                ParseSet[GeoType](raw[DimGeoType]),
		GeoRegion:              ParseSet[GeoRegion](raw[DimGeoRegion]),
		ClimateType:            ParseSet[ClimateType](raw[DimClimateType]),
		WeatherCharacteristics: ParseSet[WeatherCharacteristic](raw[DimWeatherCharacteristics]),
		SeasonalFeatures:       ParseSet[SeasonalFeature](raw[DimSeasonalFeatures]),
		Infrastructure:         ParseSet[Infrastructure](raw[DimInfrastructure]),
		TourismCharacteristics: ParseSet[TourismCharacteristic](raw[DimTourismCharacteristics]),
		SpecialFeatures:        ParseSet[SpecialFeature](raw[DimSpecialFeatures]),
	}
	out, dropped := t.Sanitize()
	for dim := range raw {
		if !knownDimension(dim) {
			dropped = append(dropped, dim+":*")
		}
	}
	return out, dropped
}

func knownDimension(name string) bool {
	switch name {
	case DimGeoType, DimGeoRegion, DimClimateType, DimWeatherCharacteristics,
		DimSeasonalFeatures, DimInfrastructure, DimTourismCharacteristics, DimSpecialFeatures:
		return true
	}
	return false
}

func restrictInto[T ~string](s, allowed Set[T], dim string, dropped []string) (Set[T], []string) {
	kept, bad := s.Restrict(allowed)
	for _, v := range bad {
		dropped = append(dropped, dim+":"+string(v))
	}
	return kept, dropped
}

// Confidence grades how a non-database profile was obtained.
type Confidence string

const (
	ConfidenceHigh     Confidence = "high"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceLow      Confidence = "low"
	ConfidenceFallback Confidence = "fallback"
)

// ParseConfidence maps provider output onto high/medium/low; anything else is medium.
func ParseConfidence(s string) Confidence {
	switch c := Confidence(strings.ToLower(strings.TrimSpace(s))); c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return c
	}
	return ConfidenceMedium
}

// ResolutionKind names the step of the resolution chain that produced a profile.
type ResolutionKind string

const (
	ResolvedExact    ResolutionKind = "exact"
	ResolvedFuzzy    ResolutionKind = "fuzzy"
	ResolvedInferred ResolutionKind = "inferred"
	ResolvedFallback ResolutionKind = "fallback"
)

// Resolution is the outcome of destination resolution. It is one of
// ExactMatch, FuzzyMatch, Inferred or Fallback.
type Resolution interface {
	Kind() ResolutionKind
	resolution()
}

type ExactMatch struct {
	Key string
}

type FuzzyMatch struct {
	Query      string
	MatchedKey string
	Similarity int
}

type Inferred struct {
	Confidence Confidence
}

type Fallback struct {
	Reason string
}

func (ExactMatch) Kind() ResolutionKind { return ResolvedExact }
func (FuzzyMatch) Kind() ResolutionKind { return ResolvedFuzzy }
func (Inferred) Kind() ResolutionKind   { return ResolvedInferred }
func (Fallback) Kind() ResolutionKind   { return ResolvedFallback }

func (ExactMatch) resolution() {}
func (FuzzyMatch) resolution() {}
func (Inferred) resolution()   {}
func (Fallback) resolution()   {}

// DestinationProfile is the resolved tag profile of a city. Treat it as immutable.
type DestinationProfile struct {
	City       string
	Country    string
	Key        string
	Region     string
	Hemisphere Hemisphere // optional override of the region-derived hemisphere
	Tags       DestinationTags
	Resolution Resolution
}

// FromDatabase reports whether the profile came from the lookup table.
func (p DestinationProfile) FromDatabase() bool {
	switch p.Resolution.(type) {
	case ExactMatch, FuzzyMatch:
		return true
	}
	return false
}

// InferenceConfidence is nil for table profiles.
func (p DestinationProfile) InferenceConfidence() *Confidence {
	var c Confidence
	switch r := p.Resolution.(type) {
	case Inferred:
		c = r.Confidence
	case Fallback:
		c = ConfidenceFallback
	default:
		return nil
	}
	return &c
}

// WithResolution returns a copy of the profile carrying r.
func (p DestinationProfile) WithResolution(r Resolution) DestinationProfile {
	p.Resolution = r
	return p
}

// FallbackProfile is the generic profile used when a destination cannot be resolved.
func FallbackProfile(city, country, key, reason string) DestinationProfile {
	tags, _ := DestinationTags{GeoType: NewSet(GeoUrban)}.Sanitize()
	return DestinationProfile{
		City:       city,
		Country:    country,
		Key:        key,
		Tags:       tags,
		Resolution: Fallback{Reason: reason},
	}
}

// DestinationInfo is the serialized echo of a profile and its provenance.
type DestinationInfo struct {
	City                string          `json:"city"`
	Country             string          `json:"country"`
	Key                 string          `json:"key"`
	Resolution          ResolutionKind  `json:"resolution"`
	MatchedKey          string          `json:"matched_key,omitempty"`
	FromDatabase        bool            `json:"from_database"`
	InferenceConfidence *Confidence     `json:"inference_confidence"`
	Tags                DestinationTags `json:"tags"`
}

// Info renders the profile for output.
func (p DestinationProfile) Info() DestinationInfo {
	info := DestinationInfo{
		City:                p.City,
		Country:             p.Country,
		Key:                 p.Key,
		FromDatabase:        p.FromDatabase(),
		InferenceConfidence: p.InferenceConfidence(),
		Tags:                p.Tags,
	}
	if p.Resolution != nil {
		info.Resolution = p.Resolution.Kind()
	}
	if fm, ok := p.Resolution.(FuzzyMatch); ok {
		info.MatchedKey = fm.MatchedKey
	}
	return info
}
