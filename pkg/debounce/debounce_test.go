package debounce

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_LatestCallWins(t *testing.T) {
	g := New[string](50*time.Millisecond, time.Minute)
	var calls int32

	fn := func(input string) func(ctx context.Context) (string, error) {
		return func(ctx context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "result:" + input, nil
		}
	}

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = g.Do(context.Background(), "session", "pal", fn("pal"))
	}()

	time.Sleep(10 * time.Millisecond)
	result, err := g.Do(context.Background(), "session", "palermo", fn("palermo"))
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, "result:palermo", result)
	assert.ErrorIs(t, firstErr, ErrSuperseded)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGroup_SameInputIsNotRepeated(t *testing.T) {
	g := New[int](0, time.Minute)
	var calls int32
	fn := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	first, err := g.Do(context.Background(), "session", "cordoba", fn)
	require.NoError(t, err)
	second, err := g.Do(context.Background(), "session", "cordoba", fn)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGroup_KeysAreIndependent(t *testing.T) {
	g := New[string](0, time.Minute)

	a, err := g.Do(context.Background(), "a", "x", func(ctx context.Context) (string, error) { return "a", nil })
	require.NoError(t, err)
	b, err := g.Do(context.Background(), "b", "x", func(ctx context.Context) (string, error) { return "b", nil })
	require.NoError(t, err)

	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}

func TestGroup_ForgetDropsLastResult(t *testing.T) {
	g := New[int](0, time.Minute)
	var calls int32
	fn := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	_, err := g.Do(context.Background(), "session", "q", fn)
	require.NoError(t, err)
	g.Forget("session")
	second, err := g.Do(context.Background(), "session", "q", fn)
	require.NoError(t, err)

	assert.Equal(t, 2, second)
}

func TestGroup_ContextCancelledDuringDelay(t *testing.T) {
	g := New[int](time.Second, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Do(ctx, "session", "q", func(ctx context.Context) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGroup_IdleKeysExpire(t *testing.T) {
	g := New[int](0, 30*time.Millisecond)
	var calls int32
	fn := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	_, err := g.Do(context.Background(), "expired-session", "q", fn)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	time.Sleep(80 * time.Millisecond)

	// состояние вытеснено, тот же вход выполняется заново
	second, err := g.Do(context.Background(), "expired-session", "q", fn)
	require.NoError(t, err)
	assert.Equal(t, 2, second)
}

func TestGroup_ActiveKeyOutlivesTTL(t *testing.T) {
	g := New[int](0, 60*time.Millisecond)
	var calls int32
	fn := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	for i := 0; i < 4; i++ {
		_, err := g.Do(context.Background(), "session", "q", fn)
		require.NoError(t, err)
		time.Sleep(25 * time.Millisecond)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
