package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/awmpietro/sortlab/internal/config"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

type countingObserver struct {
	calls int
}

func (o *countingObserver) ObserveTrace(alg sorttrace.Algorithm, size, steps int, d time.Duration) {
	o.calls++
}

func TestBuild_WiresObserverAndCache(t *testing.T) {
	obs := &countingObserver{}
	svc, err := Build(config.Defaults(), nil, obs, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Trace(TraceRequest{Algorithm: "quick"}); err != nil {
			t.Fatal(err)
		}
	}
	if obs.calls != 1 {
		t.Fatalf("expected one observed generation (second is cached), got %d", obs.calls)
	}

	results, err := svc.Benchmark(context.Background(), 100, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestBuild_LoadsCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.yaml")
	if err := os.WriteFile(path, []byte("fish:\n  - name: Pirarucu\n    price: 80\n  - name: Lambari\n    price: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := config.Defaults()
	cfg.CatalogFile = path

	svc, err := Build(cfg, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := svc.Trace(TraceRequest{Algorithm: "merge"})
	if err != nil {
		t.Fatal(err)
	}
	final := res.Records.Last().Array
	if len(final) != 2 || final[0].Name != "Lambari" {
		t.Fatalf("unexpected final order: %#v", final)
	}

	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := Build(cfg, nil, nil, nil); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
