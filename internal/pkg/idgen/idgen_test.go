package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-player/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("lock")

	a, b := g.Generate(), g.Generate()

	assert.True(t, strings.HasPrefix(a, "lock_"))
	assert.NotEqual(t, a, b)
	assert.NotContains(t, idgen.NewUUID("").Generate(), "_")
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("t")

	assert.Equal(t, "t_1", g.Generate())
	assert.Equal(t, "t_2", g.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
