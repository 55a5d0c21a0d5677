package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectHours(t *testing.T) {
	// 1800 minutes over a 15-day period: 30h worked, 60h projected
	periodHours, projected := ProjectHours(1800, 15)
	assert.Equal(t, 30.0, periodHours)
	assert.Equal(t, 60.0, projected)
}

func TestProjectHours_ScalesLinearly(t *testing.T) {
	_, single := ProjectHours(900, 15)
	_, double := ProjectHours(1800, 15)
	assert.Equal(t, single*2, double)
}

func TestProjectHours_ZeroPeriod(t *testing.T) {
	periodHours, projected := ProjectHours(600, 0)
	assert.Equal(t, 10.0, periodHours)
	assert.Equal(t, 0.0, projected)
}

func TestProjectHours_OneDecimalRounding(t *testing.T) {
	// 500 minutes = 8.333...h -> 8.3
	periodHours, _ := ProjectHours(500, 10)
	assert.Equal(t, 8.3, periodHours)

	// 8.333h/10d * 30 = 25h
	_, projected := ProjectHours(500, 10)
	assert.Equal(t, 25.0, projected)

	// 100 minutes = 1.666...h -> 1.7
	periodHours, _ = ProjectHours(100, 30)
	assert.Equal(t, 1.7, periodHours)
}
