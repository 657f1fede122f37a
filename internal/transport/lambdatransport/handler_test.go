package lambdatransport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/bench"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

type svcStub struct {
	traceFn     func(req app.TraceRequest) (*app.TraceResult, error)
	dotFn       func(req app.TraceRequest) (string, error)
	benchmarkFn func(ctx context.Context, size, reps int) ([]bench.Result, error)
}

func (s *svcStub) Trace(req app.TraceRequest) (*app.TraceResult, error) { return s.traceFn(req) }
func (s *svcStub) DOT(req app.TraceRequest) (string, error) { return s.dotFn(req) }
func (s *svcStub) Benchmark(ctx context.Context, size, reps int) ([]bench.Result, error) {
	return s.benchmarkFn(ctx, size, reps)
}

func okTrace(req app.TraceRequest) (*app.TraceResult, error) {
	return &app.TraceResult{
		Dataset: app.DatasetRecords,
		Records: &sorttrace.Trace[sorttrace.Record]{Algorithm: sorttrace.MergeSort},
	}, nil
}

func TestHandler_Trace_InvalidJSON(t *testing.T) {
	h := NewHandler(&svcStub{traceFn: okTrace})

	resp, err := h.Handle(context.Background(), events.APIGatewayV2HTTPRequest{RawPath: "/trace", Body: "{"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestHandler_Trace_Base64Body(t *testing.T) {
	h := NewHandler(&svcStub{traceFn: okTrace})

	body := base64.StdEncoding.EncodeToString([]byte(`{"algorithm":"merge"}`))
	resp, err := h.Handle(context.Background(), events.APIGatewayV2HTTPRequest{
		RawPath:         "/trace",
		Body:            body,
		IsBase64Encoded: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &out); err != nil {
		t.Fatal(err)
	}
	if out["dataset"] != "records" || out["trace"] == nil {
		t.Fatalf("unexpected response: %s", resp.Body)
	}
}

func TestHandler_Trace_InvalidArgumentIs400(t *testing.T) {
	h := NewHandler(&svcStub{traceFn: func(req app.TraceRequest) (*app.TraceResult, error) {
		return nil, fmt.Errorf("%w: unsupported algorithm", app.ErrInvalidArgument)
	}})

	resp, err := h.Handle(context.Background(), events.APIGatewayV2HTTPRequest{RawPath: "/trace", Body: `{"algorithm":"heap"}`})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestHandler_DOTAndBenchmarkRoutes(t *testing.T) {
	h := NewHandler(&svcStub{
		dotFn: func(req app.TraceRequest) (string, error) { return "digraph trace {}", nil },
		benchmarkFn: func(ctx context.Context, size, reps int) ([]bench.Result, error) {
			if size != 50 {
				return nil, fmt.Errorf("unexpected size %d", size)
			}
			return []bench.Result{{Name: "Quick Sort", Winner: true}}, nil
		},
	})

	resp, err := h.Handle(context.Background(), events.APIGatewayV2HTTPRequest{RawPath: "/trace/dot", Body: `{"algorithm":"quick"}`})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 || resp.Body != "digraph trace {}" {
		t.Fatalf("unexpected dot response: %d %q", resp.StatusCode, resp.Body)
	}

	resp, err = h.Handle(context.Background(), events.APIGatewayV2HTTPRequest{RawPath: "/benchmark", Body: `{"size":50}`})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, resp.Body)
	}
}

func TestHandler_UnknownRoute(t *testing.T) {
	h := NewHandler(&svcStub{})

	resp, err := h.Handle(context.Background(), events.APIGatewayV2HTTPRequest{RawPath: "/infer", Body: `{}`})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}
