package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrength_KnownScenario(t *testing.T) {
	// skill_count=5, flagged=2 -> feedback=13, raw=5*3+13*5=80.
	assert.Equal(t, 80, Strength(5, 2))
}

func TestStrength_SaturatesAt100(t *testing.T) {
	assert.Equal(t, 100, Strength(14, 0)) // 14*3 + 15*5 = 117
	assert.Equal(t, 100, Strength(50, 0))
}

func TestStrength_ManyFlaggedBullets(t *testing.T) {
	// Feedback component floors at zero beyond 15 flagged bullets.
	assert.Equal(t, 6, Strength(2, 15))
	assert.Equal(t, 6, Strength(2, 40))
}

func TestStrength_ZeroInputs(t *testing.T) {
	assert.Equal(t, 75, Strength(0, 0)) // 15*5
}

func TestStrength_Bounds(t *testing.T) {
	for skills := 0; skills <= 30; skills++ {
		for flagged := 0; flagged <= 20; flagged++ {
			score := Strength(skills, flagged)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
