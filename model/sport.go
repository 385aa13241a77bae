// Package model holds the value types decoded from the upstream API.
package model

// Sport is a category of events such as "football" or "basketball".
type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s Sport) String() string {
	if s.Name == "" {
		return s.ID
	}
	return s.Name
}
