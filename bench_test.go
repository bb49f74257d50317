package fragmap

import (
	"fmt"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	m := New[int, int]()
	for i := 0; i < b.N; i++ {
		m.InsertOrAssign(i, i)
	}
}

func BenchmarkCopy(b *testing.B) {
	m := New[int, int]()
	for i := 0; i < 10000; i++ {
		m.InsertOrAssign(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Copy()
	}
}

func BenchmarkAtThroughDeepChain(b *testing.B) {
	m := New[int, int]()
	m.Insert(0, 0)
	for depth := 0; depth < 50; depth++ {
		m = m.Copy()
		m.InsertOrAssign(depth+1, depth+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.At(0)
	}
}

func BenchmarkDetachAfterDeepChain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := New[int, int]()
		for depth := 0; depth < 50; depth++ {
			m = m.Copy()
			m.InsertOrAssign(depth, depth)
		}
		b.StartTimer()
		m.Detach()
	}
}

func BenchmarkCursorWalk(b *testing.B) {
	m := New[string, int]()
	for i := 0; i < 1000; i++ {
		m.InsertOrAssign(fmt.Sprintf("key-%d", i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := m.Begin()
		for c.Next() {
		}
	}
}
