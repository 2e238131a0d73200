package connect

import (
	"context"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/app/session"
	bluetoothhubv1 "github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1"
	"github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1/bluetoothhubv1connect"
)

// HubService implements the HubService RPC on top of a session manager.
type HubService struct {
	session *session.Manager
}

// NewHubService creates a new HubService.
func NewHubService(session *session.Manager) *HubService {
	return &HubService{
		session: session,
	}
}

// Ensure HubService implements the interface.
var _ bluetoothhubv1connect.HubServiceHandler = (*HubService)(nil)

// GetView returns the current session snapshot.
func (s *HubService) GetView(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.GetViewRequest],
) (*connect.Response[bluetoothhubv1.GetViewResponse], error) {
	return connect.NewResponse(&bluetoothhubv1.GetViewResponse{View: s.view()}), nil
}

// RequestDiscovery starts a fresh discovery.
func (s *HubService) RequestDiscovery(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.RequestDiscoveryRequest],
) (*connect.Response[bluetoothhubv1.RequestDiscoveryResponse], error) {
	if err := s.session.RequestDiscovery(ctx); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.RequestDiscoveryResponse{View: s.view()}), nil
}

// CancelDiscovery stops a running discovery.
func (s *HubService) CancelDiscovery(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.CancelDiscoveryRequest],
) (*connect.Response[bluetoothhubv1.CancelDiscoveryResponse], error) {
	if err := s.session.CancelDiscovery(ctx); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.CancelDiscoveryResponse{View: s.view()}), nil
}

// SelectDevice selects a discovered or paired device.
func (s *HubService) SelectDevice(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.SelectDeviceRequest],
) (*connect.Response[bluetoothhubv1.SelectDeviceResponse], error) {
	if req.Msg.DeviceId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("device_id is required"))
	}
	if err := s.session.SelectDeviceByID(ctx, req.Msg.DeviceId); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.SelectDeviceResponse{View: s.view()}), nil
}

// Connect connects to the selected device, selecting DeviceID first when set.
func (s *HubService) Connect(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.ConnectRequest],
) (*connect.Response[bluetoothhubv1.ConnectResponse], error) {
	if req.Msg.DeviceId != "" {
		if err := s.session.SelectDeviceByID(ctx, req.Msg.DeviceId); err != nil {
			return nil, toConnectError(err)
		}
	}
	if err := s.session.ConnectToSelected(ctx); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.ConnectResponse{View: s.view()}), nil
}

// CancelConnection cancels the live connection.
func (s *HubService) CancelConnection(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.CancelConnectionRequest],
) (*connect.Response[bluetoothhubv1.CancelConnectionResponse], error) {
	if err := s.session.CancelConnection(ctx); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.CancelConnectionResponse{View: s.view()}), nil
}

// EnableRadio asks the platform to power the adapter.
func (s *HubService) EnableRadio(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.EnableRadioRequest],
) (*connect.Response[bluetoothhubv1.EnableRadioResponse], error) {
	if err := s.session.RequestEnableRadio(ctx); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.EnableRadioResponse{View: s.view()}), nil
}

// ReportPermission records the outcome of a platform permission prompt.
func (s *HubService) ReportPermission(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.ReportPermissionRequest],
) (*connect.Response[bluetoothhubv1.ReportPermissionResponse], error) {
	p, ok := fromPermissionState(req.Msg.GetPermission())
	if !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			errors.Newf("invalid permission %s", req.Msg.GetPermission()))
	}
	if err := s.session.ReportPermission(ctx, p); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&bluetoothhubv1.ReportPermissionResponse{View: s.view()}), nil
}

// WatchView streams the current view followed by every newer one.
func (s *HubService) WatchView(
	ctx context.Context,
	req *connect.Request[bluetoothhubv1.WatchViewRequest],
	stream *connect.ServerStream[bluetoothhubv1.WatchViewResponse],
) error {
	subscriptionID, views := s.session.Subscribe()
	defer s.session.Unsubscribe(subscriptionID)

	zlog.Debug().Msgf("view watcher attached: subscription_id=%s", subscriptionID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.session.Done():
			return nil
		case v, ok := <-views:
			if !ok {
				return nil
			}
			if err := stream.Send(&bluetoothhubv1.WatchViewResponse{View: toView(v)}); err != nil {
				return err
			}
		}
	}
}

func (s *HubService) view() *bluetoothhubv1.View {
	return toView(s.session.View())
}

// toConnectError maps session errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, session.ErrUnknownDevice):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrNoDeviceSelected):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrManagerClosed), errors.Is(err, session.ErrNotStarted):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
