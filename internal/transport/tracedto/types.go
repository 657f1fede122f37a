// Package tracedto holds the JSON bodies shared by the HTTP and Lambda
// transports.
package tracedto

import (
	"errors"
	"net/http"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/bench"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

const DefaultBenchmarkSize = 1000

type TraceRequest struct {
	Dataset   string             `json:"dataset,omitempty"`
	Algorithm string             `json:"algorithm"`
	Records   []sorttrace.Record `json:"records,omitempty"`
	Numbers   []float64          `json:"numbers,omitempty"`
	Filter    string             `json:"filter,omitempty"`
}

func (r TraceRequest) ToApp() app.TraceRequest {
	return app.TraceRequest{
		Dataset:   app.Dataset(r.Dataset),
		Algorithm: r.Algorithm,
		Records:   r.Records,
		Numbers:   r.Numbers,
		Filter:    r.Filter,
	}
}

type TraceResponse struct {
	Dataset app.Dataset `json:"dataset"`
	Trace   any         `json:"trace"`
}

func NewTraceResponse(res *app.TraceResult) TraceResponse {
	out := TraceResponse{Dataset: res.Dataset}
	if res.Records != nil {
		out.Trace = res.Records
	} else {
		out.Trace = res.Numbers
	}
	return out
}

type BenchmarkRequest struct {
	Size        *int `json:"size,omitempty"`
	Repetitions int  `json:"repetitions,omitempty"`
}

// SizeOrDefault returns DefaultBenchmarkSize when size was omitted.
func (r BenchmarkRequest) SizeOrDefault() int {
	if r.Size == nil {
		return DefaultBenchmarkSize
	}
	return *r.Size
}

type BenchmarkResponse struct {
	Results []bench.Result `json:"results"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Status maps service errors onto HTTP status codes.
func Status(err error) int {
	if errors.Is(err, app.ErrInvalidArgument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
