package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 6.48, Round2(2.99+3.49))
	assert.Equal(t, 10.0, Round2(10))
	assert.Equal(t, 0.5, Round2(0.499999999999))
	assert.Equal(t, 12.35, Round2(12.345))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.5, Round1(4.5))
	assert.Equal(t, 4.5, Round1(9.0/2))
	assert.Equal(t, 4.7, Round1(4.666666))
	assert.Equal(t, 0.0, Round1(0))
}

func TestPence(t *testing.T) {
	assert.Equal(t, int64(30), Pence(0.30))
	assert.Equal(t, int64(1999), Pence(19.99))
	// 19.99*100 is not exactly representable as a float; the decimal
	// conversion must not truncate it to 1998.
	assert.Equal(t, int64(548), Pence(5.48))
}
