package net_test

import (
	"net/http"
	"testing"

	perr "dataproc/internal/platform/errors"
	pnet "dataproc/internal/platform/net"
)

func TestReplyOK(t *testing.T) {
	status, w := pnet.OK(map[string]int{"operation_code": 1}, "r1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("unexpected envelope %+v", w)
	}
	if w.RequestID != "r1" || w.Data == nil || w.Error != "" {
		t.Fatalf("unexpected envelope %+v", w)
	}

	status, w = pnet.Reply(http.StatusCreated, "x", "")
	if status != http.StatusCreated || w.Status != "Created" {
		t.Fatalf("unexpected created envelope %+v", w)
	}
}

func TestReplyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
	}{
		{"nil is ok", nil, http.StatusOK, 0},
		{"json", perr.JSONErrf("Invalid JSON format"), http.StatusBadRequest, perr.ErrorCodeJSON},
		{"file", perr.InvalidArgf("Failed to process file"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument},
		{"network", perr.Unavailablef("Unable to reach processing service"), http.StatusServiceUnavailable, perr.ErrorCodeUnavailable},
		{"upstream", perr.Upstreamf("Processing failed"), http.StatusBadGateway, perr.ErrorCodeUpstream},
		{"in flight", perr.Conflictf("submission in progress"), http.StatusConflict, perr.ErrorCodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, w := pnet.Error(tt.err, "rid")
			if status != tt.status || w.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", status, tt.status)
			}
			if w.Code != tt.code {
				t.Fatalf("code = %v, want %v", w.Code, tt.code)
			}
			if tt.err != nil && w.Error == "" {
				t.Fatalf("error text missing")
			}
		})
	}
}

func TestReplyErrorCarriesField(t *testing.T) {
	_, w := pnet.Error(perr.WithField(perr.InvalidArgf("bad"), "email"), "")
	if w.Field != "email" {
		t.Fatalf("field = %q", w.Field)
	}
}
