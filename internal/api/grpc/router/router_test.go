package router

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/edupost/edupost-server/internal/api/grpc/health"
	"github.com/edupost/edupost-server/internal/mocks"
	"github.com/edupost/edupost-server/internal/testutil"
)

func TestRouter_Register_ServesHealth(t *testing.T) {
	t.Parallel()

	pinger := mocks.NewPinger(t)
	pinger.On("Ping", mock.Anything).Return(nil)
	checker := health.NewChecker(pinger, time.Minute, testutil.MakeNoopLogger())
	checker.Probe(context.Background())

	s := New(checker.Server(), testutil.MakeNoopLogger()).Register()
	require.NotNil(t, s)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: health.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
