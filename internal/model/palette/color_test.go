package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnHash_ShouldMatchKnownValues(t *testing.T) {
	assert.Equal(t, int32(-1529793603), hash("Housing"))
	assert.Equal(t, int32(76517104), hash("Other"))
	assert.Equal(t, int32(0), hash(""))
}

func Test_OnCategoryColor_ShouldBeDeterministic(t *testing.T) {
	tests := map[string]string{
		"Housing":       "#10b981",
		"Food & Dining": "#10b981",
		"Other":         "#ef4444",
		"Shopping":      "#6366f1",
		"":              "#3b82f6",
	}
	for category, color := range tests {
		assert.Equal(t, color, CategoryColor(category), category)
		assert.Equal(t, CategoryColor(category), CategoryColor(category))
	}
}

func Test_OnColors_ShouldCoverEveryCategory(t *testing.T) {
	res := Colors([]string{"Housing", "Other"})
	assert.Len(t, res, 2)
	assert.Equal(t, "#ef4444", res["Other"])
}
