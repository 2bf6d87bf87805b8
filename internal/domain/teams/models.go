package teams

import "strings"

// Team is one row of a season's standings: identity, conference/division
// group label and the upstream postseason marker.
// A nil Postseason means the team is still active or the outcome is unknown.
type Team struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Group      string  `json:"group,omitempty"`
	Postseason *string `json:"postseason,omitempty"`
	Logo       string  `json:"logo,omitempty"`
}

// Conference returns the part of the group label before the first "/".
func (t Team) Conference() string {
	conf, _, _ := strings.Cut(t.Group, "/")
	return strings.TrimSpace(conf)
}

// Marker returns the postseason marker or "" when unset.
func (t Team) Marker() string {
	if t.Postseason == nil {
		return ""
	}
	return *t.Postseason
}

// IsPlaceholder reports whether the team is the empty sentinel used to pad brackets.
func (t Team) IsPlaceholder() bool {
	return t.ID == 0 && t.Name == ""
}

// FindByID returns the team with the given id from list.
func FindByID(list []Team, id int) (Team, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// PostseasonMarker builds a marker pointer for fixtures and mappers.
func PostseasonMarker(v string) *string {
	return &v
}
