package op

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mod struct{}

func (m mod) binary()                   {}
func (m mod) Symbol() string            { return "%" }
func (m mod) Name() string              { return "mod" }
func (m mod) Priority() int             { return priority(m) }
func (m mod) Exec(a, b float64) float64 { return apply(m, a, b) }

func TestOperatorOutsideSetDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.True(t, math.IsNaN(mod{}.Exec(1, 2)))
	})
	assert.Equal(t, 0, mod{}.Priority())
}
