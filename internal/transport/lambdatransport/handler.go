package lambdatransport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/transport/tracedto"
)

type Handler struct {
	svc app.SortService
}

func NewHandler(svc app.SortService) *Handler {
	return &Handler{svc: svc}
}

// Handle routes by RawPath: /trace, /trace/dot and /benchmark.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	body, err := readBody(req)
	if err != nil {
		return jsonResp(http.StatusBadRequest, tracedto.ErrorResponse{Error: "invalid body", Details: err.Error()}), nil
	}

	switch req.RawPath {
	case "/trace":
		return h.trace(body), nil
	case "/trace/dot":
		return h.dot(body), nil
	case "/benchmark":
		return h.benchmark(ctx, body), nil
	default:
		return jsonResp(http.StatusNotFound, tracedto.ErrorResponse{Error: "not found", Details: req.RawPath}), nil
	}
}

func (h *Handler) trace(body []byte) events.APIGatewayV2HTTPResponse {
	var in tracedto.TraceRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return jsonResp(http.StatusBadRequest, tracedto.ErrorResponse{Error: "invalid json", Details: err.Error()})
	}
	res, err := h.svc.Trace(in.ToApp())
	if err != nil {
		return jsonResp(tracedto.Status(err), tracedto.ErrorResponse{Error: "trace failed", Details: err.Error()})
	}
	return jsonResp(http.StatusOK, tracedto.NewTraceResponse(res))
}

func (h *Handler) dot(body []byte) events.APIGatewayV2HTTPResponse {
	var in tracedto.TraceRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return jsonResp(http.StatusBadRequest, tracedto.ErrorResponse{Error: "invalid json", Details: err.Error()})
	}
	dot, err := h.svc.DOT(in.ToApp())
	if err != nil {
		return jsonResp(tracedto.Status(err), tracedto.ErrorResponse{Error: "dot export failed", Details: err.Error()})
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"content-type": "text/vnd.graphviz"},
		Body:       dot,
	}
}

func (h *Handler) benchmark(ctx context.Context, body []byte) events.APIGatewayV2HTTPResponse {
	var in tracedto.BenchmarkRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return jsonResp(http.StatusBadRequest, tracedto.ErrorResponse{Error: "invalid json", Details: err.Error()})
	}
	results, err := h.svc.Benchmark(ctx, in.SizeOrDefault(), in.Repetitions)
	if err != nil {
		return jsonResp(tracedto.Status(err), tracedto.ErrorResponse{Error: "benchmark failed", Details: err.Error()})
	}
	return jsonResp(http.StatusOK, tracedto.BenchmarkResponse{Results: results})
}

func readBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func jsonResp(status int, body any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(b),
	}
}
