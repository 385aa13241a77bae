package api

import (
	"net/url"
	"strings"
)

func sportsPath() string {
	return "/api/sports"
}

func matchesPath(category string) string {
	segments := strings.Split(strings.Trim(category, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return "/api/matches/" + strings.Join(segments, "/")
}

func streamPath(source, id string) string {
	return "/api/stream/" + url.PathEscape(source) + "/" + url.PathEscape(id)
}

func badgePath(badgeID string) string {
	return "/api/images/badge/" + url.PathEscape(badgeID) + ".webp"
}
