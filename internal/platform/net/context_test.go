package net_test

import (
	"context"
	"testing"

	"dataproc/internal/platform/logger"
	pnet "dataproc/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q, want req-123", got)
	}

	if got := pnet.RequestID(pnet.WithRequest(base, "")); got != "" {
		t.Fatalf("blank id should not be stored, got %q", got)
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("empty ctx RequestID = %q", got)
	}

	// the submission id rides alongside without clobbering the request id
	ctx = logger.WithSubmission(ctx, "sub-1")
	if pnet.RequestID(ctx) != "req-123" || logger.SubmissionID(ctx) != "sub-1" {
		t.Fatalf("ids lost after layering")
	}
}
