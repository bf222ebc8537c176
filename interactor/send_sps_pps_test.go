package interactor_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rise-and-shine/mediadevice/camera"
	"github.com/rise-and-shine/mediadevice/interactor"
	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/mask"
	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/scheduler"
	"github.com/rise-and-shine/mediadevice/usecase"
	"github.com/rise-and-shine/mediadevice/usecase/wrapper"
)

var testDevice = camera.Device{
	ID:        "urn:uuid:5f5a69c2-e0ae-504f-829b-00fcdab169cc",
	Name:      "lobby",
	XAddr:     "http://192.168.1.64/onvif/device_service",
	StreamURI: "rtsp://192.168.1.64:554/Streaming/Channels/101",
	Username:  "admin",
	Password:  "secret",
}

// markedLooper records whether a task is running on the looper goroutine.
type markedLooper struct {
	*scheduler.Looper
	inLoop atomic.Bool
}

func (l *markedLooper) Post(task func()) error {
	return l.Looper.Post(func() {
		l.inLoop.Store(true)
		defer l.inLoop.Store(false)
		task()
	})
}

func startLooper(t *testing.T) *markedLooper {
	t.Helper()
	l := scheduler.NewLooper(logger.NewNop())
	require.NoError(t, l.Start())
	t.Cleanup(func() { _ = l.Stop(context.Background()) })
	return &markedLooper{Looper: l}
}

func startPool(t *testing.T) *scheduler.Pool {
	t.Helper()
	p, err := scheduler.NewPool(scheduler.PoolConfig{Concurrency: 1, QueueSize: 4}, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, p.Start())
	t.Cleanup(func() { _ = p.Stop(context.Background()) })
	return p
}

func TestParamsFor(t *testing.T) {
	p := interactor.ParamsFor(testDevice, 7)
	assert.Equal(t, testDevice, p.Device())
	assert.Equal(t, 7, p.SessionID())
	require.NoError(t, p.Validate())

	tests := []struct {
		name   string
		params *interactor.SendSpsPpsParams
	}{
		{name: "missing device id", params: interactor.ParamsFor(camera.Device{}, 7)},
		{name: "negative session", params: interactor.ParamsFor(testDevice, -1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.params.Validate())
		})
	}
}

func TestSendSpsPpsParams_MaskView(t *testing.T) {
	om := mask.StructToOrdMap(interactor.ParamsFor(testDevice, 7))
	require.NotNil(t, om)

	v, ok := om.Get("session_id")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = om.Get("device.password")
	require.True(t, ok)
	assert.NotEqual(t, "secret", v)
}

func TestSendSpsPps_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := camera.NewMockRepository(ctrl)
	uc := interactor.NewSendSpsPps(repo)

	assert.Equal(t, interactor.OperationSendSpsPps, uc.OperationID())

	repo.EXPECT().SendSpsPps(gomock.Any(), testDevice, 7).Return(false, nil)
	got, err := uc.Run(context.Background(), interactor.ParamsFor(testDevice, 7))
	require.NoError(t, err)
	assert.False(t, got, "result is passed through untransformed")

	_, err = uc.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, usecase.IsPreconditionError(err))
}

func TestSendSpsPps_RunAddsDeviceMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := camera.NewMockRepository(ctrl)

	var seen map[meta.ContextKey]string
	repo.EXPECT().SendSpsPps(gomock.Any(), testDevice, 7).
		DoAndReturn(func(ctx context.Context, _ camera.Device, _ int) (bool, error) {
			seen = meta.ExtractMetaFromContext(ctx)
			return true, nil
		})

	ctx := meta.InjectMetaToContext(context.Background(), map[meta.ContextKey]string{
		meta.InvocationID: "inv-1",
	})
	_, err := interactor.NewSendSpsPps(repo).Run(ctx, interactor.ParamsFor(testDevice, 7))
	require.NoError(t, err)

	assert.Equal(t, map[meta.ContextKey]string{
		meta.InvocationID: "inv-1",
		meta.DeviceID:     testDevice.ID,
		meta.SessionID:    "7",
	}, seen)
}

func TestSendSpsPpsExecutor_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := camera.NewMockRepository(ctrl)
	repo.EXPECT().SendSpsPps(gomock.Any(), testDevice, 7).Return(true, nil).Times(1)

	looper := startLooper(t)
	exec, err := interactor.NewSendSpsPpsExecutor(repo, startPool(t), looper,
		[]usecase.WrapFunc[*interactor.SendSpsPpsParams, bool]{
			wrapper.NewRecovery[*interactor.SendSpsPpsParams, bool](logger.NewNop()),
		},
		usecase.WithLogger(logger.NewNop()),
		usecase.WithMetricsRegistry(metrics.NewRegistry()),
	)
	require.NoError(t, err)
	assert.Equal(t, interactor.OperationSendSpsPps, exec.OperationID())

	var (
		got      []bool
		onLooper bool
	)
	h, err := exec.Execute(interactor.ParamsFor(testDevice, 7),
		func(ok bool) {
			got = append(got, ok)
			onLooper = looper.inLoop.Load()
		},
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := h.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeCompleted, out)
	assert.Equal(t, []bool{true}, got)
	assert.True(t, onLooper, "result is delivered on the looper")
}

func TestSendSpsPpsExecutor_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := camera.NewMockRepository(ctrl)
	repo.EXPECT().SendSpsPps(gomock.Any(), testDevice, 3).Return(false, camera.ErrSessionNotFound)

	exec, err := interactor.NewSendSpsPpsExecutor(repo, scheduler.Immediate{}, scheduler.Immediate{}, nil,
		usecase.WithLogger(logger.NewNop()), usecase.WithMetricsRegistry(metrics.NewRegistry()))
	require.NoError(t, err)

	var gotErr error
	h, err := exec.Execute(interactor.ParamsFor(testDevice, 3),
		func(bool) { t.Error("onResult called") },
		func(err error) { gotErr = err },
	)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateFailed, h.State())
	require.Error(t, gotErr)
	assert.ErrorIs(t, gotErr, camera.ErrSessionNotFound)
	assert.True(t, usecase.IsOperationError(gotErr))
}

func TestSendSpsPpsExecutor_Preconditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := camera.NewMockRepository(ctrl) // no calls expected

	var submitted atomic.Int32
	bg := scheduler.BackgroundFunc(func(task func()) error {
		submitted.Add(1)
		task()
		return nil
	})

	exec, err := interactor.NewSendSpsPpsExecutor(repo, bg, scheduler.Immediate{}, nil,
		usecase.WithLogger(logger.NewNop()), usecase.WithMetricsRegistry(metrics.NewRegistry()))
	require.NoError(t, err)

	for _, p := range []*interactor.SendSpsPpsParams{nil, interactor.ParamsFor(camera.Device{}, 7)} {
		h, err := exec.Execute(p, nil, nil)
		require.Error(t, err)
		assert.Nil(t, h)
		assert.True(t, usecase.IsPreconditionError(err))
	}
	assert.Equal(t, int32(0), submitted.Load())
}
