package availability

// Kind is the type of a catalog title
type Kind string

const (
	KindMovie  Kind = "Movie"
	KindSeries Kind = "Series"
)

// ContentRef identifies a title in the catalog
type ContentRef struct {
	ID   int
	Kind Kind
}

// SeasonAvailability lists the episodes of one season the mirror serves, ascending
type SeasonAvailability struct {
	Season   int
	Episodes []int
}

// Empty is true when no episode of the season is served
func (s SeasonAvailability) Empty() bool {
	return len(s.Episodes) == 0
}

// SeriesAvailability is the per series result of the season aggregator.
// Every season in ValidSeasons has a non-empty entry in EpisodesBySeason and
// StreamingURLs holds one URL per listed episode, season-major.
type SeriesAvailability struct {
	ValidSeasons     []int
	EpisodesBySeason map[int][]int
	StreamingURLs    []string
}

// EmptySeries is the availability of a series the mirror does not serve
func EmptySeries() SeriesAvailability {
	return SeriesAvailability{
		ValidSeasons:     []int{},
		EpisodesBySeason: map[int][]int{},
		StreamingURLs:    []string{},
	}
}

// IsAvailable is true when at least one season is served
func (s SeriesAvailability) IsAvailable() bool {
	return len(s.ValidSeasons) > 0
}

// TotalEpisodes counts every served episode
func (s SeriesAvailability) TotalEpisodes() int {
	return len(s.StreamingURLs)
}

// MovieAvailability reports whether a movie is served and where
type MovieAvailability struct {
	IsAvailable bool
	URL         *string
}
