package counter

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// テスト用に初期値を差し込む
func withStart(n int64) Option {
	return func(o *options) {
		o.start = n
	}
}

func TestCounter_Increment(t *testing.T) {
	tests := []struct {
		name     string
		times    int
		expected int64
	}{
		{
			name:     "no increment",
			times:    0,
			expected: 0,
		},
		{
			name:     "single increment",
			times:    1,
			expected: 1,
		},
		{
			name:     "three increments",
			times:    3,
			expected: 3,
		},
		{
			name:     "many increments",
			times:    1000,
			expected: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := New()

			var last int64
			for i := 0; i < tt.times; i++ {
				last = sut.Increment()
				// 戻り値は加算後の値
				if last != int64(i+1) {
					t.Fatalf("Increment() = %d, want %d", last, i+1)
				}
			}

			if got := sut.Count(); got != tt.expected {
				t.Errorf("Count() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCounter_Count(t *testing.T) {
	t.Run("fresh counter starts at zero", func(t *testing.T) {
		if got := New().Count(); got != 0 {
			t.Errorf("Count() = %d, want 0", got)
		}
	})

	t.Run("read is idempotent", func(t *testing.T) {
		sut := New()
		sut.Increment()
		sut.Increment()

		got := []int64{sut.Count(), sut.Count(), sut.Count()}
		if diff := cmp.Diff([]int64{2, 2, 2}, got); diff != "" {
			t.Errorf("Count() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCounter_Isolation(t *testing.T) {
	c1 := New()
	c2 := New()

	c1.Increment()
	c1.Increment()
	c2.Increment()

	if got := c1.Count(); got != 2 {
		t.Errorf("c1.Count() = %d, want 2", got)
	}
	if got := c2.Count(); got != 1 {
		t.Errorf("c2.Count() = %d, want 1", got)
	}

	before := c2.Count()
	for i := 0; i < 10; i++ {
		c1.Increment()
	}
	if got := c2.Count(); got != before {
		t.Errorf("c2.Count() changed to %d after incrementing c1, want %d", got, before)
	}
}

func TestCounter_ConcurrentIncrement(t *testing.T) {
	const (
		workers = 16
		perWork = 500
	)
	sut := New()

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range perWork {
				sut.Increment()
			}
		}()
	}
	wg.Wait()

	if got := sut.Count(); got != workers*perWork {
		t.Errorf("Count() = %d, want %d", got, workers*perWork)
	}
}

func TestCounter_Overflow(t *testing.T) {
	sut := New(withStart(math.MaxInt64 - 1))

	if got := sut.Increment(); got != math.MaxInt64 {
		t.Fatalf("Increment() = %d, want %d", got, int64(math.MaxInt64))
	}

	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok {
				t.Fatalf("expected panic with error, got %v", r)
			}
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("expected ErrOverflow, got %v", err)
			}
		}()
		sut.Increment()
	}()

	// 上限でpanicした後もカウントは変わらない
	if got := sut.Count(); got != math.MaxInt64 {
		t.Errorf("Count() = %d after overflow, want %d", got, int64(math.MaxInt64))
	}
}

func TestWithObserver(t *testing.T) {
	var observed []int64
	sut := New(WithObserver(func(v int64) {
		observed = append(observed, v)
	}))

	sut.Increment()
	sut.Increment()
	sut.Count()
	sut.Increment()

	if diff := cmp.Diff([]int64{1, 2, 3}, observed); diff != "" {
		t.Errorf("observed values mismatch (-want +got):\n%s", diff)
	}
}

func TestIncrementer(t *testing.T) {
	inc1 := Incrementer()
	inc2 := Incrementer()

	got1 := []int64{inc1(), inc1(), inc1()}
	got2 := []int64{inc2()}

	if diff := cmp.Diff([]int64{1, 2, 3}, got1); diff != "" {
		t.Errorf("inc1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1}, got2); diff != "" {
		t.Errorf("inc2 mismatch (-want +got):\n%s", diff)
	}
}
