// Command aarith-bench runs a micro-benchmark sweep over the numeric
// layers and prints per-operation throughput.
//
// Usage:
//
//	go run ./cmd/aarith-bench [flags]
//
// Flags:
//
//	-iters N  Iterations per operation (default 100000)
//	-csv      Output results in CSV format (default: human-readable)
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/sarchlab/aarith/aslog"
	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/float"
	"github.com/sarchlab/aarith/integer"
	"github.com/sarchlab/aarith/posit"
	"github.com/sarchlab/aarith/randsrc"
)

type benchCase struct {
	name string
	run  func(iters int)
}

func main() {
	iters := flag.Int("iters", 100000, "iterations per operation")
	csv := flag.Bool("csv", false, "output results in CSV format")
	flag.Parse()

	logger := aslog.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	u128a := integer.UintFromBits(randomBits(rng, 128))
	u128b := integer.UintFromBits(randomBits(rng, 128))
	f32a := float.FromFloat32(8, 23, rng.Float32()*100)
	f32b := float.FromFloat32(8, 23, rng.Float32()*100+0.5)
	p16a := posit.FromFloat64(16, 1, rng.Float64()*8)
	p16b := posit.FromFloat64(16, 1, rng.Float64()*8+0.25)

	cases := []benchCase{
		{"uint128.add", func(n int) {
			for i := 0; i < n; i++ {
				_ = u128a.Add(u128b)
			}
		}},
		{"uint128.mul", func(n int) {
			for i := 0; i < n; i++ {
				_ = u128a.Mul(u128b)
			}
		}},
		{"uint128.divmod", func(n int) {
			for i := 0; i < n; i++ {
				_, _, _ = u128a.DivMod(u128b)
			}
		}},
		{"float32.add", func(n int) {
			for i := 0; i < n; i++ {
				_ = f32a.Add(f32b)
			}
		}},
		{"float32.mul", func(n int) {
			for i := 0; i < n; i++ {
				_ = f32a.Mul(f32b)
			}
		}},
		{"posit16.add", func(n int) {
			for i := 0; i < n; i++ {
				_ = p16a.Add(p16b)
			}
		}},
		{"posit16.mul", func(n int) {
			for i := 0; i < n; i++ {
				_ = p16a.Mul(p16b)
			}
		}},
		{"quire16.fdp", func(n int) {
			q := posit.NewQuire(16, 1)
			for i := 0; i < n; i++ {
				q = q.AddProduct(p16a, p16b)
			}
		}},
	}

	if *csv {
		fmt.Println("operation,iterations,total_ns,ns_per_op")
	} else {
		fmt.Println("aarith micro-benchmarks")
		fmt.Println("=======================")
	}

	for _, c := range cases {
		start := time.Now()
		c.run(*iters)
		elapsed := time.Since(start)
		perOp := float64(elapsed.Nanoseconds()) / float64(*iters)
		if *csv {
			fmt.Printf("%s,%d,%d,%.1f\n", c.name, *iters, elapsed.Nanoseconds(), perOp)
		} else {
			fmt.Printf("%-16s %10d iters  %8.1f ns/op\n", c.name, *iters, perOp)
		}
		logger.Info("benchmark complete", "op", c.name, "ns_per_op", perOp)
	}

	if !*csv {
		fmt.Fprintln(os.Stdout, "")
	}
}

func randomBits(rng *rand.Rand, n int) container.Bits {
	words := make([]uint64, (n+63)/64)
	for i := range words {
		words[i] = randsrc.UniformUint(rng, 0, math.MaxUint64)
	}
	return container.FromWords(n, words)
}
