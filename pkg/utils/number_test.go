package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
}

func TestRoundWithFourDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithFourDecimalPlace(0))
	assert.Equal(t, 12.3457, RoundWithFourDecimalPlace(12.345678))
	assert.Equal(t, 2.5, RoundWithFourDecimalPlace(2.5))
}
