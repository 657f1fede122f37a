package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
)

type tracePayload struct {
	Dataset   string `json:"dataset,omitempty"`
	Algorithm string `json:"algorithm"`
	Filter    string `json:"filter,omitempty"`
}

type result struct {
	latency time.Duration
	status  int
	err     error
}

func main() {
	url := flag.String("url", "http://localhost:8080/trace", "trace endpoint URL")
	rps := flag.Int("rps", 50, "target requests per second")
	duration := flag.Duration("duration", 60*time.Second, "test duration")
	workers := flag.Int("workers", 50, "worker pool size")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP client timeout")
	p90Target := flag.Duration("p90", 30*time.Millisecond, "P90 latency the run must stay under")
	flag.Parse()

	if *rps <= 0 || *duration <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "rps, duration and workers must be > 0")
		os.Exit(2)
	}

	// rotate through algorithms and datasets so the cache sees several keys
	payloads := []tracePayload{
		{Algorithm: "quicksort"},
		{Algorithm: "mergesort", Filter: "price >= 20"},
		{Dataset: "bars", Algorithm: "bubblesort"},
		{Dataset: "bars", Algorithm: "mergesort"},
	}
	bodies := make([][]byte, 0, len(payloads))
	for _, p := range payloads {
		b, err := json.Marshal(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal payload: %v\n", err)
			os.Exit(1)
		}
		bodies = append(bodies, b)
	}

	client := &http.Client{Timeout: *timeout}

	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make([]result, 0, *rps*int(duration.Seconds())+1)
	record := func(r result) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}

	pool, err := ants.NewPoolWithFunc(*workers, func(arg any) {
		defer wg.Done()
		body := arg.([]byte)

		start := time.Now()
		req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
		if err != nil {
			record(result{latency: time.Since(start), err: err})
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		lat := time.Since(start)
		if err != nil {
			record(result{latency: lat, err: err})
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		record(result{latency: lat, status: resp.StatusCode})
	}, ants.WithPanicHandler(func(v any) {
		fmt.Fprintf(os.Stderr, "worker panic: %v\n", v)
	}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create pool: %v\n", err)
		os.Exit(1)
	}
	defer pool.Release()

	interval := time.Second / time.Duration(*rps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.Now().Add(*duration)
	launched := 0

	for now := range ticker.C {
		if now.After(deadline) {
			break
		}
		wg.Add(1)
		if err := pool.Invoke(bodies[launched%len(bodies)]); err != nil {
			wg.Done()
			record(result{err: err})
		}
		launched++
	}
	wg.Wait()

	latencies := lo.Map(results, func(r result, _ int) time.Duration { return r.latency })
	errs := lo.CountBy(results, func(r result) bool { return r.err != nil })
	success2xx := lo.CountBy(results, func(r result) bool {
		return r.err == nil && r.status >= 200 && r.status < 300
	})
	non2xx := len(results) - errs - success2xx

	if len(latencies) == 0 {
		fmt.Fprintln(os.Stderr, "no requests executed")
		os.Exit(1)
	}

	slices.Sort(latencies)
	p50 := percentile(latencies, 50)
	p90 := percentile(latencies, 90)
	p99 := percentile(latencies, 99)
	avg := average(latencies)
	achievedRPS := float64(len(latencies)) / duration.Seconds()

	fmt.Printf("Load test finished\n")
	fmt.Printf("- target_rps: %d\n", *rps)
	fmt.Printf("- achieved_rps: %.2f\n", achievedRPS)
	fmt.Printf("- duration: %s\n", duration.String())
	fmt.Printf("- requests: %d\n", len(latencies))
	fmt.Printf("- 2xx: %d\n", success2xx)
	fmt.Printf("- non_2xx: %d\n", non2xx)
	fmt.Printf("- errors: %d\n", errs)
	fmt.Printf("- avg_ms: %.3f\n", ms(avg))
	fmt.Printf("- p50_ms: %.3f\n", ms(p50))
	fmt.Printf("- p90_ms: %.3f\n", ms(p90))
	fmt.Printf("- p99_ms: %.3f\n", ms(p99))

	minRPS := float64(*rps) * 0.98
	if achievedRPS >= minRPS && p90 < *p90Target && errs == 0 && non2xx == 0 {
		fmt.Printf("PASS: meets %d RPS and P90 < %s\n", *rps, *p90Target)
		return
	}

	fmt.Println("FAIL: does not meet target (or has request errors)")
	os.Exit(1)
}

func percentile(items []time.Duration, p int) time.Duration {
	if len(items) == 0 {
		return 0
	}
	idx := (len(items) - 1) * p / 100
	return items[idx]
}

func average(items []time.Duration) time.Duration {
	if len(items) == 0 {
		return 0
	}
	return lo.Sum(items) / time.Duration(len(items))
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
