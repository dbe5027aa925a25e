// Command bench runs a synthetic workload against the store and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	pmet "github.com/cachekit/memolru/metrics/prom"
	"github.com/cachekit/memolru/store"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "store capacity (entries)")

		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "memolru", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build store ----
	s, err := store.New[string, string](store.Options[string, string]{
		Capacity: *capacity,
		Metrics:  metrics,
	})
	if err != nil {
		log.Fatalf("store.New: %v", err)
	}

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		s.Set(k, "v"+strconv.Itoa(i))
	}

	// ---- Load generation ----
	// The store is caller-serialized, so a single generator drives it;
	// concurrency belongs to the host, not to the store.
	r := rand.New(rand.NewSource(*seed))
	zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
	keyByZipf := func() string {
		return "k:" + strconv.FormatUint(zipf.Uint64(), 10)
	}

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		total++
		if int(r.Int31n(100)) < *readPct {
			reads++
			if _, ok := s.Get(keyByZipf()); ok {
				hits++
			} else {
				misses++
			}
		} else {
			writes++
			s.Set(keyByZipf(), "v"+strconv.Itoa(r.Int()))
		}
	}
	elapsed := time.Since(start)

	// ---- Report ----
	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads) * 100
	}

	fmt.Printf("cap=%d keys=%d dur=%v seed=%d\n", *capacity, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		total, float64(total)/elapsed.Seconds(), reads, writes)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hits, misses, hitRate)
	fmt.Printf("Len()=%d\n", s.Len())
}
