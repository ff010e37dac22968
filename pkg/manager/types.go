package manager

const (
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
	backdropBaseURL = "https://image.tmdb.org/t/p/original"

	MoviePosterPlaceholder  = "No poster found"
	SeriesPosterPlaceholder = "https://via.placeholder.com/200x300.png?text=No+Poster"

	unknown               = "Unknown"
	notAvailable          = "N/A"
	noOverviewPlaceholder = "No overview available."
)

// MovieSummary is a movie search hit
type MovieSummary struct {
	ID            int     `json:"id"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float32 `json:"vote_average"`
	Poster        string  `json:"poster"`
}

// SeriesSummary is a series search hit
type SeriesSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	AirDate  string  `json:"air_date"`
	VoteAvg  float32 `json:"vote_avg"`
	Overview string  `json:"overview"`
	Poster   string  `json:"poster"`
}

// MovieDetails is the catalog record of a movie plus its mirror availability
type MovieDetails struct {
	ID            int      `json:"id"`
	URL           *string  `json:"url"`
	IsAvailable   bool     `json:"is_available"`
	OriginalTitle string   `json:"original_title"`
	Overview      string   `json:"overview"`
	ReleaseDate   string   `json:"release_date"`
	VoteAverage   float32  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Runtime       int      `json:"runtime"`
	Genres        []string `json:"genres"`
	Poster        string   `json:"poster"`
	BackdropPath  *string  `json:"backdrop_path"`
	Budget        int64    `json:"budget"`
	Revenue       int64    `json:"revenue"`
	Status        string   `json:"status"`
}

// SeriesDetails is the catalog record of a series plus the seasons and episodes the mirror serves
type SeriesDetails struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	AirDate          string        `json:"air_date"`
	VoteAvg          float32       `json:"vote_avg"`
	Overview         string        `json:"overview"`
	Poster           string        `json:"poster"`
	IsAvailable      bool          `json:"is_available"`
	ValidSeasons     []int         `json:"valid_seasons"`
	ValidEpisodes    map[int][]int `json:"valid_episodes"`
	StreamingURLs    []string      `json:"streaming_urls"`
	NumberOfSeasons  int           `json:"number_of_seasons"`
	NumberOfEpisodes int           `json:"number_of_episodes"`
	Status           string        `json:"status"`
	Genres           []string      `json:"genres"`
	BackdropPath     *string       `json:"backdrop_path"`
	FirstAirDate     string        `json:"first_air_date"`
	LastAirDate      string        `json:"last_air_date"`
	VoteCount        int           `json:"vote_count"`
	Popularity       float32       `json:"popularity"`
}
