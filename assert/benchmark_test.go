package assert

import "testing"

// Benchmarks verify the checks are lightweight enough for always-on usage.
// Target for Always/Never on holding conditions: a branch and a return,
// zero allocations. The f variants may pay for variadic boxing, never for
// formatting. Only holding conditions are benchmarked so the file runs
// under both build flavors.

func BenchmarkAlwaysHolding(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if !Always(true) {
			b.Fatal("unexpected failure")
		}
	}
}

func BenchmarkAlwaysfHolding(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if !Alwaysf(true, "never formatted %d", i) {
			b.Fatal("unexpected failure")
		}
	}
}

func BenchmarkNeverHolding(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if Never(false) {
			b.Fatal("unexpected failure")
		}
	}
}

func BenchmarkNeverfHolding(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if Neverf(false, "never formatted %d", i) {
			b.Fatal("unexpected failure")
		}
	}
}
