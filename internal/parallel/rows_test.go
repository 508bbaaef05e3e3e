package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkers(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
		want    int
	}{
		{"small image single band", 10, 8, 1},
		{"exact bands", 64, 4, 4},
		{"capped by rows", 40, 8, 3},
		{"zero rows", 0, 4, 1},
		{"explicit single", 1000, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Workers(tt.n, tt.workers); got != tt.want {
				t.Errorf("Workers(%d, %d) = %d, want %d", tt.n, tt.workers, got, tt.want)
			}
		})
	}
}

func TestWorkers_DefaultGOMAXPROCS(t *testing.T) {
	n := 1 << 20
	want := runtime.GOMAXPROCS(0)
	if got := Workers(n, 0); got != want {
		t.Errorf("Workers(%d, 0) = %d, want %d (GOMAXPROCS)", n, got, want)
	}
	if got := Workers(n, -3); got != want {
		t.Errorf("Workers(%d, -3) = %d, want %d (GOMAXPROCS)", n, got, want)
	}
}

func TestRows_CoversEveryRowOnce(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 100, 1023} {
		for _, workers := range []int{0, 1, 3, 8} {
			hits := make([]int32, n)
			Rows(n, workers, func(lo, hi int) {
				for y := lo; y < hi; y++ {
					atomic.AddInt32(&hits[y], 1)
				}
			})
			for y, h := range hits {
				if h != 1 {
					t.Fatalf("n=%d workers=%d: row %d visited %d times", n, workers, y, h)
				}
			}
		}
	}
}

func TestRows_Empty(t *testing.T) {
	called := false
	Rows(0, 4, func(lo, hi int) { called = true })
	if called {
		t.Error("fn called for zero rows")
	}
	Rows(10, 4, nil) // must not panic
}

func TestRows_BandsAreDisjoint(t *testing.T) {
	var mu sync.Mutex
	var bands [][2]int
	Rows(200, 4, func(lo, hi int) {
		mu.Lock()
		bands = append(bands, [2]int{lo, hi})
		mu.Unlock()
	})
	if len(bands) != 4 {
		t.Fatalf("got %d bands, want 4", len(bands))
	}
	total := 0
	for _, b := range bands {
		if b[0] >= b[1] {
			t.Errorf("empty band %v", b)
		}
		total += b[1] - b[0]
	}
	if total != 200 {
		t.Errorf("bands cover %d rows, want 200", total)
	}
}

func TestRows_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		Rows(512, 8, func(lo, hi int) {})
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	final := runtime.NumGoroutine()
	// Allow for some variance (test framework goroutines, etc.)
	if final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}

func BenchmarkRows(b *testing.B) {
	buf := make([]float32, 1024*1024)
	for i := 0; i < b.N; i++ {
		Rows(1024, 0, func(lo, hi int) {
			for y := lo; y < hi; y++ {
				row := buf[y*1024 : (y+1)*1024]
				for x := range row {
					row[x] = row[x]*0.5 + 0.25
				}
			}
		})
	}
}
