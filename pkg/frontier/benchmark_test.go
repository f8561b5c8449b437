package frontier

import (
	"context"
	"testing"

	"github.com/zommiommy/parallel-frontier/pkg/pool"
)

func BenchmarkPush(b *testing.B) {
	f := New[int](WithShards(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Push(0, i)
	}
}

func BenchmarkPush_Preallocated(b *testing.B) {
	f := New[int](WithShards(1), WithCapacity(b.N))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Push(0, i)
	}
}

func BenchmarkParallelPush(b *testing.B) {
	p := pool.New(0)
	f := New[int](WithPool(p))
	b.ResetTimer()
	err := p.ForEach(context.Background(), b.N, func(worker, i int) error {
		f.Push(worker, i)
		return nil
	})
	if err != nil {
		b.Fatalf("ForEach failed: %v", err)
	}
}

func BenchmarkSequentialView(b *testing.B) {
	p := pool.New(0)
	f := New[int](WithPool(p))
	if err := p.ForEach(context.Background(), 1_000_000, func(worker, i int) error {
		f.Push(worker, i)
		return nil
	}); err != nil {
		b.Fatalf("populate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range f.All() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkParallelView(b *testing.B) {
	p := pool.New(0)
	f := New[int](WithPool(p))
	if err := p.ForEach(context.Background(), 1_000_000, func(worker, i int) error {
		f.Push(worker, i)
		return nil
	}); err != nil {
		b.Fatalf("populate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ForEach(context.Background(), p, f, func(worker, v int) error {
			return nil
		}); err != nil {
			b.Fatalf("ForEach failed: %v", err)
		}
	}
}
