package interactor

import (
	"context"

	"github.com/spf13/cast"

	"github.com/rise-and-shine/mediadevice/camera"
	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/scheduler"
	"github.com/rise-and-shine/mediadevice/usecase"
	"github.com/rise-and-shine/mediadevice/val"
)

// OperationSendSpsPps is the operation id of SendSpsPps.
const OperationSendSpsPps = "send_sps_pps"

// SendSpsPpsParams are the immutable parameters of SendSpsPps. Build them with ParamsFor.
type SendSpsPpsParams struct {
	device    camera.Device
	sessionID int
}

// ParamsFor builds SendSpsPps parameters for the given device and media session.
func ParamsFor(device camera.Device, sessionID int) *SendSpsPpsParams {
	return &SendSpsPpsParams{device: device, sessionID: sessionID}
}

// Device returns the target device.
func (p *SendSpsPpsParams) Device() camera.Device {
	return p.device
}

// SessionID returns the media session id.
func (p *SendSpsPpsParams) SessionID() int {
	return p.sessionID
}

type sendSpsPpsView struct {
	Device    camera.Device `json:"device"`
	SessionID int           `json:"session_id" validate:"gte=0"`
}

func (p *SendSpsPpsParams) view() sendSpsPpsView {
	return sendSpsPpsView{Device: p.device, SessionID: p.sessionID}
}

// Validate checks the device reference and the session id.
func (p *SendSpsPpsParams) Validate() error {
	return val.ValidateSchema(p.view())
}

// MaskView returns the loggable form of the parameters.
func (p *SendSpsPpsParams) MaskView() any {
	return p.view()
}

// SendSpsPps asks a camera device to (re)send the SPS/PPS codec parameter sets of a
// media session. The result is the device acknowledgement as reported by the repository.
type SendSpsPps struct {
	repo camera.Repository
}

// NewSendSpsPps creates the use case over repo.
func NewSendSpsPps(repo camera.Repository) *SendSpsPps {
	return &SendSpsPps{repo: repo}
}

// OperationID returns OperationSendSpsPps.
func (uc *SendSpsPps) OperationID() string {
	return OperationSendSpsPps
}

// Run delegates to the repository without transforming its result. The device and
// session ids are added to the context metadata so repository logs carry them.
func (uc *SendSpsPps) Run(ctx context.Context, params *SendSpsPpsParams) (bool, error) {
	if params == nil {
		return false, usecase.NewPreconditionError(OperationSendSpsPps, nil)
	}

	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{ //nolint:exhaustive // device keys only
		meta.DeviceID:  params.device.ID,
		meta.SessionID: cast.ToString(params.sessionID),
	})

	return uc.repo.SendSpsPps(ctx, params.device, params.sessionID)
}

// NewSendSpsPpsExecutor builds an Executor running SendSpsPps over repo, optionally
// decorated with wraps (first wrap outermost).
func NewSendSpsPpsExecutor(
	repo camera.Repository,
	bg scheduler.Background,
	post scheduler.Delivery,
	wraps []usecase.WrapFunc[*SendSpsPpsParams, bool],
	opts ...usecase.Option,
) (*usecase.Executor[*SendSpsPpsParams, bool], error) {
	return usecase.New(usecase.Chain(NewSendSpsPps(repo), wraps...), bg, post, opts...)
}
