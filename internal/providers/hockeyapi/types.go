package hockeyapi

// ProviderName identifies this upstream in logs and metrics.
const ProviderName = "hockeyapi"

type standingsResponse struct {
	Data []standingResponse `json:"data"`
}

type standingResponse struct {
	Team       teamResponse `json:"team"`
	Group      string       `json:"group"`
	Postseason *string      `json:"postseason"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID            int          `json:"id"`
	Date          string       `json:"date"`
	Time          string       `json:"time"`
	Status        string       `json:"status"`
	HomeTeam      teamResponse `json:"home_team"`
	VisitingTeam  teamResponse `json:"visiting_team"`
	HomeScore     *int         `json:"home_score"`
	VisitingScore *int         `json:"visiting_score"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}
