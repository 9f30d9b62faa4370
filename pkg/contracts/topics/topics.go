package topics

const (
	// Feed de partidas
	MatchUpdates = "match_updates"
)
