package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	assert.True(t, Matches("rice", "rice"))
	assert.True(t, Matches("Brown Rice", "rice"))
	assert.True(t, Matches("rice", "brown rice"))
	assert.True(t, Matches("  Black Beans ", "black beans"))

	// Accepted heuristic false positive: substring containment matches
	// related-but-distinct items.
	assert.True(t, Matches("onion", "green onion"))

	assert.False(t, Matches("rice", "beans"))
	assert.False(t, Matches("", "rice"))
	assert.False(t, Matches("rice", ""))
}

func TestMatchesAny(t *testing.T) {
	known := []string{"black beans", "rice", "olive oil"}
	assert.True(t, MatchesAny("Rice", known))
	assert.True(t, MatchesAny("canned black beans", known))
	assert.False(t, MatchesAny("lime", known))
	assert.False(t, MatchesAny("lime", nil))
}

func TestIsPantryStaple(t *testing.T) {
	assert.True(t, IsPantryStaple("salt"))
	assert.True(t, IsPantryStaple("Baking Powder"))
	assert.False(t, IsPantryStaple("chicken breast"))
}

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, "lbs", NormalizeUnit("pound"))
	assert.Equal(t, "lbs", NormalizeUnit("LB"))
	assert.Equal(t, "oz", NormalizeUnit("ounces"))
	assert.Equal(t, "liters", NormalizeUnit("litre"))
	assert.Equal(t, "cans", NormalizeUnit("can"))
	assert.Equal(t, "kg", NormalizeUnit("kg"))
	assert.Equal(t, "item", NormalizeUnit("hogshead"))
	assert.Equal(t, "item", NormalizeUnit(""))
}
