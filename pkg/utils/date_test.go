package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(""))
	assert.NoError(t, ValidateDate("2026-08-31"))
	assert.Error(t, ValidateDate("31-08-2026"))
	assert.Error(t, ValidateDate("2026/08/31"))
	assert.Error(t, ValidateDate("2026-13-01"))
}
