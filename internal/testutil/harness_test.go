package testutil

import (
	"sync"
	"testing"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestSafeBuffer_ConcurrentWrites(t *testing.T) {
	var buf SafeBuffer
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = buf.Write([]byte("x"))
		}()
	}
	wg.Wait()
	assert.Len(t, buf.String(), 50)
}

func TestLogContext(t *testing.T) {
	var buf SafeBuffer
	ctx := LogContext(&buf)

	logger := ctxlog.FromContext(ctx)
	logger.Debug("quiet")
	ctxlog.Success(ctx, logger, "done")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=quiet")
	assert.Contains(t, out, "level=SUCCESS msg=done")
}
