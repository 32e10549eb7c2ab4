package usecase

import (
	"fmt"

	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

// seqIDGenerator hands out predictable IDs so assertions can reference rows
// created during a test.
type seqIDGenerator struct {
	prefix string
	next   int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}
