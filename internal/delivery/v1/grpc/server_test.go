package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/DRSN-tech/watch-store/internal/cfg"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startBufServer(t *testing.T) (*GRPCServer, healthpb.HealthClient) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	srv := NewGRPCServer(&cfg.GRPCConfig{Port: "0", NetworkMode: "tcp"}, logger.NewNop())
	srv.RegisterServices()
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return srv, healthpb.NewHealthClient(conn)
}

func TestGRPCServer_Health(t *testing.T) {
	srv, client := startBufServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.Eventually(t, func() bool {
		res, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && res.Status == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	srv.SetServing(false)
	res, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, res.Status)

	_, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	require.NoError(t, srv.Stop(ctx))
}

func TestGRPCErrorResponse(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"not found", e.Wrap("op", e.ErrProductNotExist), codes.NotFound, "Product does not exist"},
		{"bad request", e.Wrap("op", e.ErrNegativeLikeCount), codes.InvalidArgument, "Like count must not be negative"},
		{"deadline", e.Wrap("op", context.DeadlineExceeded), codes.DeadlineExceeded, ""},
		{"internal", errors.New("pgx: conn closed"), codes.Internal, e.ErrInternalServerError.Error()},
		{"already status", status.Error(codes.Unavailable, "down"), codes.Unavailable, "down"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := status.Convert(GRPCErrorResponse(tc.err))
			assert.Equal(t, tc.code, st.Code())
			if tc.msg != "" {
				assert.Equal(t, tc.msg, st.Message())
			}
		})
	}
}
