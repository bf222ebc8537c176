package alert

import (
	"context"
	"net"

	"github.com/code19m/errx"
	sentinelpb "github.com/code19m/sentinel/pb"
	"github.com/spf13/cast"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rise-and-shine/mediadevice/meta"
)

// SentinelProvider sends alerts to the Sentinel service.
type SentinelProvider struct {
	cfg    Config
	client sentinelpb.SentinelServiceClient
	conn   *grpc.ClientConn
}

// NewSentinelProvider creates a client for the Sentinel service in cfg. The
// connection is established lazily on the first call.
func NewSentinelProvider(cfg Config) (*SentinelProvider, error) {
	conn, err := grpc.NewClient(
		net.JoinHostPort(cfg.SentinelHost, cast.ToString(cfg.SentinelPort)),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &SentinelProvider{
		cfg:    cfg,
		client: sentinelpb.NewSentinelServiceClient(conn),
		conn:   conn,
	}, nil
}

// SendError reports the error to Sentinel, bounded by cfg.SendTimeout.
// The call is detached from ctx cancellation so a failing operation can still be reported.
func (sp *SentinelProvider) SendError(
	ctx context.Context,
	errCode, msg, operation string,
	details map[string]string,
) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sp.cfg.SendTimeout)
	defer cancel()

	service, _ := meta.Service()

	_, err := sp.client.SendError(ctx, &sentinelpb.ErrorInfo{
		Code:      errCode,
		Message:   msg,
		Service:   service,
		Operation: operation,
		Details:   withServiceDetails(details),
	})

	return errx.Wrap(err)
}

// Close closes the gRPC connection.
func (sp *SentinelProvider) Close() error {
	if sp.conn != nil {
		return sp.conn.Close()
	}
	return nil
}
