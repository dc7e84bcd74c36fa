package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcoelho/carteira/internal/models"
)

func TestWarningCollector(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	Warningf(ctx, models.WarnQuoteFetchFailed, "live quote unavailable for %s", "PETR4")
	Warningf(ctx, models.WarnAvgCostFetchFailed, "average cost unavailable for %s", "HGLG11")

	warnings := wc.GetWarnings()
	if assert.Len(t, warnings, 2) {
		assert.Equal(t, models.WarnQuoteFetchFailed, warnings[0].Code)
		assert.Equal(t, "live quote unavailable for PETR4", warnings[0].Message)
		assert.Equal(t, models.WarnAvgCostFetchFailed, warnings[1].Code)
	}
}

func TestWarningfWithoutCollector(t *testing.T) {
	// Background contexts without a collector must not panic.
	Warningf(context.Background(), models.WarnQuoteFetchFailed, "dropped")
}

func TestWarningCollectorConcurrent(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Warningf(ctx, models.WarnQuoteFetchFailed, "warning")
		}()
	}
	wg.Wait()

	assert.Len(t, wc.GetWarnings(), 50)
}
