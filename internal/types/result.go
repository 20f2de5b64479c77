package types

// TemporalContext holds the season and calendar facts for one trip.
type TemporalContext struct {
	Month          int                  `json:"month"`
	RawSeason      Season               `json:"raw_season"`
	AdjustedSeason Season               `json:"adjusted_season"`
	Hemisphere     Hemisphere           `json:"hemisphere"`
	SpecialPeriods Set[SeasonalFeature] `json:"special_periods"`
}

// ScoredCategory is one ranked entry of a result list.
type ScoredCategory struct {
	CategoryName        string `json:"category_name"`
	ParentCategory      string `json:"parent_category"`
	Score               int    `json:"score"`
	SearchQueryTemplate string `json:"search_query_template"`
	Description         string `json:"description"`
	IsFallback          bool   `json:"is_fallback"`
}

// ExcludedCategory records why a category was filtered out.
type ExcludedCategory struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
	Reason string `json:"reason"`
}

// FilterResult is the engine's output contract.
type FilterResult struct {
	Destination      DestinationInfo    `json:"destination"`
	TemporalContext  TemporalContext    `json:"temporal_context"`
	Places           []ScoredCategory   `json:"places"`
	Activities       []ScoredCategory   `json:"activities"`
	Cuisines         []ScoredCategory   `json:"cuisines"`
	DiningFormats    []ScoredCategory   `json:"dining_formats"`
	Dietary          []ScoredCategory   `json:"dietary"`
	ExcludedCount    int                `json:"excluded_count"`
	ExcludedExamples []ExcludedCategory `json:"excluded_examples"`
}

// List returns a pointer to the result list for kind, or nil for an unknown kind.
func (r *FilterResult) List(kind ListKind) *[]ScoredCategory {
	switch kind {
	case ListPlaces:
		return &r.Places
	case ListActivities:
		return &r.Activities
	case ListCuisines:
		return &r.Cuisines
	case ListDiningFormats:
		return &r.DiningFormats
	case ListDietary:
		return &r.Dietary
	}
	return nil
}
