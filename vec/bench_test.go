package vec

import "testing"

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		v := New[int]()
		for i := range 1024 {
			v.PushBack(i)
		}
		v.Free()
	}
}

func BenchmarkNewFilled(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		NewFilled(1024, 7).Free()
	}
}

func BenchmarkPushPop(b *testing.B) {
	v := NewSized[int](64)
	b.ResetTimer()
	for i := range b.N {
		v.PushBack(i)
		if _, err := v.PopBack(); err != nil {
			b.Fatal(err)
		}
	}
}
