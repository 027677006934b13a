package statistics

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStat() *KafkaStatistics {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewKafkaStatistics(nil, nil, logger, nil)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newStat().Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithoutReader(t *testing.T) {
	err := newStat().Run(context.Background())
	assert.ErrorIs(t, err, ErrNoReader)
}

func TestPushWithoutWriter(t *testing.T) {
	err := newStat().Push(context.Background(), Request{Method: "GET", URL: "/classes"})
	assert.ErrorIs(t, err, ErrNoWriter)
}
