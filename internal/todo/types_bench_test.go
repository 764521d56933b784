package todo

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func benchList(n int) *List {
	l := New()
	base := time.Date(2024, 3, 5, 9, 7, 0, 0, testZone)
	for i := 0; i < n; i++ {
		l.Add(NewTask(fixedClock(base.Add(time.Duration(i)*time.Minute)), fmt.Sprintf("task %d", i), "some longer description text"))
	}
	return l
}

func BenchmarkRenderList(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		l := benchList(n)
		r := NewRenderer(&bytes.Buffer{}, true, WithLocation(testZone))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = r.List(l)
			}
		})
	}
}

func BenchmarkSaveLoad(b *testing.B) {
	path := filepath.Join(b.TempDir(), "tasks.json")
	l := benchList(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.Save(path); err != nil {
			b.Fatal(err)
		}
		if _, err := Load(path); err != nil {
			b.Fatal(err)
		}
	}
}
