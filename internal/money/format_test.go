package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$0.00", Format(0))
	assert.Equal(t, "$1,234.50", Format(1234.5))
	assert.Equal(t, "-$5.00", Format(-5))
	assert.Equal(t, "$1,000,000.00", Format(1e6))
	assert.Equal(t, "$0.10", Format(0.1))
	assert.Equal(t, "-$1,234.57", Format(-1234.567))
}
