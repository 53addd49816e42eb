package grpcx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agendly/agendly/libs/httpx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func invokeCapturingMetadata(t *testing.T, ctx context.Context) metadata.MD {
	t.Helper()
	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}
	if err := UnaryClientRequestIDInterceptor()(ctx, "/test.Service/Do", nil, nil, nil, invoker); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	return captured
}

func TestClientInterceptor_PropagatesContextRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	md := invokeCapturingMetadata(t, ctx)

	vals := md.Get(RequestIDMetadataKey)
	if len(vals) != 1 || vals[0] != "req-123" {
		t.Fatalf("outgoing %s = %v, want [req-123]", RequestIDMetadataKey, vals)
	}
}

func TestClientInterceptor_PrefersHTTPRequestID(t *testing.T) {
	// The id minted by the HTTP middleware must survive into outgoing
	// gRPC metadata when a handler fans out to another service.
	var httpCtx context.Context
	h := httpx.WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpCtx = r.Context()
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpx.RequestIDHeader, "http-456")
	h.ServeHTTP(httptest.NewRecorder(), req)

	md := invokeCapturingMetadata(t, httpCtx)
	vals := md.Get(RequestIDMetadataKey)
	if len(vals) != 1 || vals[0] != "http-456" {
		t.Fatalf("outgoing %s = %v, want [http-456]", RequestIDMetadataKey, vals)
	}
}

func TestClientInterceptor_NoIDAddsNothing(t *testing.T) {
	md := invokeCapturingMetadata(t, context.Background())
	if vals := md.Get(RequestIDMetadataKey); len(vals) != 0 {
		t.Fatalf("outgoing %s = %v, want none", RequestIDMetadataKey, vals)
	}
}

func TestServerInterceptor_ReadsIncomingID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(RequestIDMetadataKey, "inbound-789"))

	var seen string
	handler := func(ctx context.Context, req any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	}
	if _, err := UnaryServerRequestIDInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen != "inbound-789" {
		t.Fatalf("handler saw request id %q, want inbound-789", seen)
	}
}

func TestServerInterceptor_MintsWhenAbsent(t *testing.T) {
	var seen string
	handler := func(ctx context.Context, req any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	}
	if _, err := UnaryServerRequestIDInterceptor()(context.Background(), nil, &grpc.UnaryServerInfo{}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen == "" {
		t.Fatal("expected a minted request id")
	}
}
