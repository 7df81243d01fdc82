package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hermes/pkg/utils/errutil"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), logging.New(&buf, slog.LevelInfo, logging.FormatJSON))

	gt.NoError(t, errutil.Handle(ctx, nil, "nothing"))
	gt.Value(t, buf.Len()).Equal(0)

	base := errors.New("boom")
	err := goerr.Wrap(base, "failed to list", goerr.V("channel_id", "C1"))
	got := errutil.Handle(ctx, err, "command failed")
	gt.Error(t, got).Is(base)

	gt.String(t, buf.String()).Contains("command failed")
	gt.String(t, buf.String()).Contains("channel_id")

	buf.Reset()
	gt.Error(t, errutil.Handle(ctx, base, "plain")).Is(base)
	gt.String(t, buf.String()).Contains(`"error":"boom"`)
}
