package memtesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	G   TestGenerator
	T   *testing.T
}

type TestConfig struct {
	// Seed drives the payload generator RNG. It is normal to force it to a
	// fixed value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
		G: NewTestGenerator(t, cfg.Seed),
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
