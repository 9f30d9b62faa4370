package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "MATCH-1", keyFor(events.MatchUpdate{GameID: "MATCH-1"}))
	assert.Equal(t, "MATCH-2", keyFor(events.StatusChange{GameID: "MATCH-2"}))
	assert.Equal(t, "", keyFor(struct{}{}))
}

func TestRedisCacheKey(t *testing.T) {
	assert.Equal(t, "match:current:MATCH-1", key("MATCH-1"))
}
