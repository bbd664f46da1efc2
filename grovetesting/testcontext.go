package grovetesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-grove/logger"
)

// TestConfig seeds the element generator so test data is the same from run
// to run.
type TestConfig struct {
	// StartTimeMS seeds the RNG. It is normal to force it to some fixed
	// value so that the generated data is reproducible.
	StartTimeMS     int64
	TestLabelPrefix string
}

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{T: t}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// TestGenerator produces deterministic element content for accumulator
// tests.
type TestGenerator struct {
	T      *testing.T
	rng    *rand.Rand
	prefix string
}

func NewTestGenerator(t *testing.T, cfg TestConfig) TestGenerator {
	return TestGenerator{
		T:      t,
		rng:    rand.New(rand.NewSource(cfg.StartTimeMS)),
		prefix: cfg.TestLabelPrefix,
	}
}

// GenerateElements returns n distinct elements. The content is uuid based
// and fully determined by the generator seed.
func (g *TestGenerator) GenerateElements(n int) [][]byte {
	elements := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		id, err := uuid.NewRandomFromReader(g.rng)
		require.NoError(g.T, err)
		elements = append(elements, []byte(fmt.Sprintf("%s/%s", g.prefix, id.String())))
	}
	return elements
}
