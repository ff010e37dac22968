package availability

import (
	"fmt"
)

const (
	DefaultMirrorScheme = "https"
	DefaultMirrorHost   = "vixsrc.to"
)

// Mirror builds the probe targets of the streaming mirror. The path layout is fixed by the mirror.
type Mirror struct {
	Scheme string
	Host   string
}

// NewMirror returns a Mirror, falling back to the public mirror for empty values
func NewMirror(scheme, host string) Mirror {
	if scheme == "" {
		scheme = DefaultMirrorScheme
	}
	if host == "" {
		host = DefaultMirrorHost
	}
	return Mirror{Scheme: scheme, Host: host}
}

func (m Mirror) base() string {
	return fmt.Sprintf("%s://%s", m.Scheme, m.Host)
}

// MovieURL is the mirror page of a movie
func (m Mirror) MovieURL(movieID int) string {
	return fmt.Sprintf("%s/movie/%d", m.base(), movieID)
}

// EpisodeURL is the mirror page of a single episode
func (m Mirror) EpisodeURL(seriesID, season, episode int) string {
	return fmt.Sprintf("%s/tv/%d/%d/%d", m.base(), seriesID, season, episode)
}
