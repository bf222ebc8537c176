package camera_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rise-and-shine/mediadevice/camera"
	"github.com/rise-and-shine/mediadevice/logger"
)

func fastRetry() camera.RetryConfig {
	return camera.RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxJitter: time.Millisecond}
}

func TestRetryRepository_SendSpsPps(t *testing.T) {
	device := camera.Device{ID: "cam-1", XAddr: "http://10.0.0.5/onvif/device_service"}

	tests := []struct {
		name    string
		expect  func(m *camera.MockRepository)
		want    bool
		wantErr error
	}{
		{
			name: "first attempt succeeds",
			expect: func(m *camera.MockRepository) {
				m.EXPECT().SendSpsPps(gomock.Any(), device, 7).Return(true, nil).Times(1)
			},
			want: true,
		},
		{
			name: "transient failures are retried",
			expect: func(m *camera.MockRepository) {
				gomock.InOrder(
					m.EXPECT().SendSpsPps(gomock.Any(), device, 7).
						Return(false, camera.Retryable(camera.ErrDeviceUnreachable)).Times(2),
					m.EXPECT().SendSpsPps(gomock.Any(), device, 7).Return(true, nil).Times(1),
				)
			},
			want: true,
		},
		{
			name: "attempts are bounded",
			expect: func(m *camera.MockRepository) {
				m.EXPECT().SendSpsPps(gomock.Any(), device, 7).
					Return(false, camera.Retryable(camera.ErrDeviceUnreachable)).Times(3)
			},
			wantErr: camera.ErrDeviceUnreachable,
		},
		{
			name: "permanent failures are not retried",
			expect: func(m *camera.MockRepository) {
				m.EXPECT().SendSpsPps(gomock.Any(), device, 7).
					Return(false, camera.ErrSessionNotFound).Times(1)
			},
			wantErr: camera.ErrSessionNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := camera.NewMockRepository(ctrl)
			tc.expect(mock)

			repo, err := camera.NewRetryRepository(mock, fastRetry(), logger.NewNop())
			require.NoError(t, err)

			got, err := repo.SendSpsPps(context.Background(), device, 7)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRetryRepository_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := camera.NewMockRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	mock.EXPECT().SendSpsPps(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, camera.Device, int) (bool, error) {
			cancel()
			return false, camera.Retryable(errors.New("timeout"))
		}).Times(1)

	repo, err := camera.NewRetryRepository(mock, camera.RetryConfig{Attempts: 5, Delay: 50 * time.Millisecond}, nil)
	require.NoError(t, err)

	_, err = repo.SendSpsPps(ctx, camera.Device{ID: "cam-1"}, 1)
	require.Error(t, err)
}

func TestNewRetryRepository_Validation(t *testing.T) {
	_, err := camera.NewRetryRepository(nil, camera.RetryConfig{}, nil)
	require.Error(t, err)

	_, err = camera.NewRetryRepository(camera.NewMockRepository(gomock.NewController(t)), camera.RetryConfig{Attempts: 50}, nil)
	require.Error(t, err)
}

func TestDevice_Validate(t *testing.T) {
	require.NoError(t, camera.Device{ID: "cam-1", StreamURI: "rtsp://10.0.0.5/main"}.Validate())
	require.Error(t, camera.Device{}.Validate())
	require.Error(t, camera.Device{ID: "cam-1", XAddr: "not a url"}.Validate())
}

func TestRetryable(t *testing.T) {
	assert.NoError(t, camera.Retryable(nil))
	assert.True(t, camera.IsRetryable(camera.Retryable(camera.ErrDeviceUnreachable)))
	assert.False(t, camera.IsRetryable(camera.ErrDeviceUnreachable))
	assert.ErrorIs(t, camera.Retryable(camera.ErrDeviceUnreachable), camera.ErrDeviceUnreachable)
}
