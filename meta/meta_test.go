package meta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/mediadevice/meta"
)

// invocationCtx builds the context an executor hands to a running use case.
func invocationCtx(opID, invID string) context.Context {
	return meta.InjectMetaToContext(context.Background(), map[meta.ContextKey]string{
		meta.OperationID:  opID,
		meta.InvocationID: invID,
	})
}

func TestInjectMetaToContext_Layers(t *testing.T) {
	tests := []struct {
		name   string
		layers []map[meta.ContextKey]string
		want   map[meta.ContextKey]string
	}{
		{
			name: "executor keys",
			layers: []map[meta.ContextKey]string{
				{meta.OperationID: "send_sps_pps", meta.InvocationID: "inv-1"},
			},
			want: map[meta.ContextKey]string{
				meta.OperationID:  "send_sps_pps",
				meta.InvocationID: "inv-1",
			},
		},
		{
			name: "wrapper and use case keys stack on the executor keys",
			layers: []map[meta.ContextKey]string{
				{meta.OperationID: "send_sps_pps", meta.InvocationID: "inv-1"},
				{meta.TraceID: "man-1", meta.ServiceName: "mediadevice", meta.ServiceVersion: "v0.3.0"},
				{meta.DeviceID: "cam-1", meta.SessionID: "7"},
			},
			want: map[meta.ContextKey]string{
				meta.OperationID:    "send_sps_pps",
				meta.InvocationID:   "inv-1",
				meta.TraceID:        "man-1",
				meta.ServiceName:    "mediadevice",
				meta.ServiceVersion: "v0.3.0",
				meta.DeviceID:       "cam-1",
				meta.SessionID:      "7",
			},
		},
		{
			name: "empty values do not hide earlier ones",
			layers: []map[meta.ContextKey]string{
				{meta.TraceID: "abc"},
				{meta.TraceID: "", meta.ServiceVersion: ""},
			},
			want: map[meta.ContextKey]string{meta.TraceID: "abc"},
		},
		{
			name: "later layer wins",
			layers: []map[meta.ContextKey]string{
				{meta.SessionID: "1"},
				{meta.SessionID: "2"},
			},
			want: map[meta.ContextKey]string{meta.SessionID: "2"},
		},
		{
			name:   "nothing injected",
			layers: []map[meta.ContextKey]string{nil},
			want:   map[meta.ContextKey]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			for _, layer := range tc.layers {
				ctx = meta.InjectMetaToContext(ctx, layer)
			}
			assert.Equal(t, tc.want, meta.ExtractMetaFromContext(ctx))
		})
	}
}

func TestExtractMetaFromContext_OnlyKnownStringKeys(t *testing.T) {
	ctx := invocationCtx("send_sps_pps", "inv-1")
	ctx = context.WithValue(ctx, meta.ContextKey("camera_model"), "ds-2cd")
	ctx = context.WithValue(ctx, meta.SessionID, 7)

	assert.Equal(t, map[meta.ContextKey]string{
		meta.OperationID:  "send_sps_pps",
		meta.InvocationID: "inv-1",
	}, meta.ExtractMetaFromContext(ctx))
}

func TestFind(t *testing.T) {
	ctx := invocationCtx("send_sps_pps", "inv-1")

	assert.Equal(t, "send_sps_pps", meta.Find(ctx, meta.OperationID))
	assert.Equal(t, "inv-1", meta.Find(ctx, meta.InvocationID))
	assert.Empty(t, meta.Find(ctx, meta.DeviceID))
	assert.Empty(t, meta.Find(context.WithValue(ctx, meta.DeviceID, 42), meta.DeviceID))
}

func TestSetServiceInfo_FirstCallWins(t *testing.T) {
	meta.SetServiceInfo("mediadevice", "v0.3.0")
	meta.SetServiceInfo("other", "v9")

	name, version := meta.Service()
	assert.Equal(t, "mediadevice", name)
	assert.Equal(t, "v0.3.0", version)
}
