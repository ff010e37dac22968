package manager

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Run("failed page is skipped and order is kept", func(t *testing.T) {
		var calls atomic.Int32
		got := paginate(context.Background(), 5, func(ctx context.Context, page int) ([]int, error) {
			calls.Add(1)
			time.Sleep(time.Duration(rand.IntN(5)) * time.Millisecond)
			if page == 2 {
				return nil, errors.New("page unavailable")
			}
			return []int{page * 10, page*10 + 1}, nil
		})

		assert.Equal(t, []int{10, 11, 30, 31, 40, 41, 50, 51}, got)
		assert.Equal(t, int32(5), calls.Load())
	})

	t.Run("completion order does not matter", func(t *testing.T) {
		got := paginate(context.Background(), 3, func(ctx context.Context, page int) ([]string, error) {
			// page 1 finishes last
			time.Sleep(time.Duration(4-page) * 5 * time.Millisecond)
			return []string{string(rune('a' + page - 1))}, nil
		})

		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("every page fails", func(t *testing.T) {
		got := paginate(context.Background(), 3, func(ctx context.Context, page int) ([]int, error) {
			return nil, errors.New("catalog down")
		})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("panicking page is skipped", func(t *testing.T) {
		got := paginate(context.Background(), 3, func(ctx context.Context, page int) ([]int, error) {
			if page == 1 {
				panic("bad page")
			}
			return []int{page}, nil
		})

		assert.Equal(t, []int{2, 3}, got)
	})

	t.Run("no pages", func(t *testing.T) {
		got := paginate(context.Background(), 0, func(ctx context.Context, page int) ([]int, error) {
			t.Fatal("fetch should not be called")
			return nil, nil
		})
		assert.Empty(t, got)
	})

	t.Run("pages run concurrently", func(t *testing.T) {
		var inFlight, peak atomic.Int32
		paginate(context.Background(), 5, func(ctx context.Context, page int) ([]int, error) {
			n := inFlight.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return nil, nil
		})

		assert.Greater(t, peak.Load(), int32(1))
	})
}
