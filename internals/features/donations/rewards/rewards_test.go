package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokensForAmount(t *testing.T) {
	assert.Equal(t, int64(0), TokensForAmount(0))
	assert.Equal(t, int64(10), TokensForAmount(1))
	assert.Equal(t, int64(100), TokensForAmount(10))
	assert.Equal(t, int64(50000), TokensForAmount(5000))
}

func TestBadgesEarned(t *testing.T) {
	assert.Empty(t, BadgesEarned(0))
	assert.Empty(t, BadgesEarned(99))

	earned := BadgesEarned(100)
	if assert.Len(t, earned, 1) {
		assert.Equal(t, "Silver Contributor", earned[0].Name)
	}

	earned = BadgesEarned(4999)
	assert.Len(t, earned, 1)

	earned = BadgesEarned(5000)
	assert.Len(t, earned, 2)

	names := []string{}
	for _, b := range BadgesEarned(1_000_000) {
		names = append(names, b.Name)
	}
	assert.Contains(t, names, "Silver Contributor")
	assert.Contains(t, names, "Bronze Contributor")
}

func TestBadgePictureURL(t *testing.T) {
	assert.NotEqual(t, "No Badge", BadgePictureURL("Silver Contributor"))
	assert.NotEqual(t, "No Badge", BadgePictureURL("Bronze Contributor"))
	assert.Equal(t, "No Badge", BadgePictureURL("Diamond Contributor"))
}
