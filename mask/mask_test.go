package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rise-and-shine/mediadevice/mask"
)

func pairs(om *orderedmap.OrderedMap[string, any]) [][2]any {
	var out [][2]any
	for p := om.Oldest(); p != nil; p = p.Next() {
		out = append(out, [2]any{p.Key, p.Value})
	}
	return out
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password" mask:"true"`
}

type device struct {
	ID       string            `json:"id"`
	Port     int               `yaml:"port"`
	Auth     credentials       `json:"auth"`
	Backup   *credentials      `json:"backup"`
	Tokens   []string          `json:"tokens"  mask:"true"`
	Headers  map[string]string `json:"headers" mask:"TRUE"`
	Internal string            `json:"-"`
	secret   string
}

type view struct{ hidden string }

func (v view) MaskView() any {
	return credentials{Username: v.hidden, Password: v.hidden}
}

func TestStructToOrdMap(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want [][2]any
	}{
		{
			name: "flattens nested structs and masks tagged fields",
			in: device{
				ID:       "cam-1",
				Port:     80,
				Auth:     credentials{Username: "admin", Password: "s3cret"},
				Tokens:   []string{"a"},
				Internal: "x",
				secret:   "y",
			},
			want: [][2]any{
				{"id", "cam-1"},
				{"port", 80},
				{"auth.username", "admin"},
				{"auth.password", "***masked-string***"},
				{"backup", nil},
				{"tokens", "***masked-slice***"},
				{"headers", nil},
			},
		},
		{
			name: "pointer input and pointer to nested struct",
			in: &device{
				ID:      "cam-2",
				Backup:  &credentials{Username: "op", Password: ""},
				Headers: map[string]string{"k": "v"},
			},
			want: [][2]any{
				{"id", "cam-2"},
				{"port", 0},
				{"auth.username", ""},
				{"auth.password", "***masked-string***"},
				{"backup.username", "op"},
				{"backup.password", "***masked-string***"},
				{"tokens", nil},
				{"headers", "***masked-map***"},
			},
		},
		{
			name: "viewer exposes its view",
			in:   view{hidden: "v"},
			want: [][2]any{
				{"username", "v"},
				{"password", "***masked-string***"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mask.StructToOrdMap(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, pairs(got))
		})
	}
}

func TestStructToOrdMap_Nil(t *testing.T) {
	assert.Nil(t, mask.StructToOrdMap(nil))
}
