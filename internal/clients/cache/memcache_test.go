package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnReportKey_ShouldIncludeGeneration(t *testing.T) {
	assert.Equal(t, "report:42:0:month", reportKey(42, generationStart, "month"))
	assert.NotEqual(t, reportKey(42, "1", "month"), reportKey(42, "2", "month"))
	assert.Equal(t, "gen:-7", generationKey(-7))
}

func Test_OnNop_ShouldAlwaysMiss(t *testing.T) {
	var c Nop
	assert.NoError(t, c.CacheReport(1, "all", "report"))
	_, err := c.GetReport(1, "all")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = c.GetCoins()
	assert.ErrorIs(t, err, ErrMiss)
}
