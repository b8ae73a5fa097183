package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeProvider_Monotonic(t *testing.T) {
	var clock Clock = NewTimeProvider()

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	assert.True(t, mock.Now().Equal(start))

	next := mock.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond), next)
	assert.Equal(t, next, mock.Now())

	// Backwards jumps are allowed
	mock.Set(start.Add(-time.Second))
	assert.Equal(t, start.Add(-time.Second), mock.Now())
}

func TestMockTimeProvider_Concurrent(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, time.Unix(0, 0).Add(800*time.Millisecond), mock.Now())
}
