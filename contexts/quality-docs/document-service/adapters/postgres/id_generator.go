package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"
)

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

var (
	_ ports.IDGenerator = UUIDGenerator{}
	_ ports.Clock       = SystemClock{}
)
