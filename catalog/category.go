package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category selects a match listing.
//
// Sport listings are written "sport/<id>" or "sport/<id>/popular" and are
// requested from the upstream as "<id>" and "<id>/popular".
type Category string

const (
	Live            Category = "live"
	LivePopular     Category = "live/popular"
	All             Category = "all"
	AllPopular      Category = "all/popular"
	AllToday        Category = "all-today"
	AllTodayPopular Category = "all-today/popular"
)

const (
	sportPrefix   = "sport/"
	popularSuffix = "/popular"
)

// Fixed lists every category that does not name a sport.
var Fixed = []Category{Live, LivePopular, All, AllPopular, AllToday, AllTodayPopular}

// ErrUnknownCategory is returned by ParseCategory for values outside the vocabulary.
var ErrUnknownCategory = errors.New("unknown category")

// SportCategory composes the listing of one sport.
func SportCategory(sportID string, popular bool) Category {
	c := Category(sportPrefix + sportID)
	if popular {
		c += popularSuffix
	}
	return c
}

// ParseCategory validates raw against the vocabulary.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.Trim(strings.TrimSpace(raw), "/"))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

// Valid reports whether c is part of the vocabulary.
func (c Category) Valid() bool {
	for _, fixed := range Fixed {
		if c == fixed {
			return true
		}
	}

	id, ok := c.SportID()
	return ok && id != "" && !strings.Contains(id, "/")
}

// SportID returns the sport of a sport listing.
func (c Category) SportID() (string, bool) {
	s := string(c)
	if !strings.HasPrefix(s, sportPrefix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(s, sportPrefix), popularSuffix), true
}

// Popular reports whether the listing is restricted to popular matches.
func (c Category) Popular() bool {
	return strings.HasSuffix(string(c), popularSuffix)
}

// Path is the segment appended to /api/matches/. Sport listings keep their
// sport/ prefix on the wire.
func (c Category) Path() string {
	return string(c)
}

func (c Category) String() string {
	return string(c)
}
