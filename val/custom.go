package val

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	tagStreamURI = "stream_uri"
)

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation(tagStreamURI, func(fl validator.FieldLevel) bool {
		return IsStreamURI(fl.Field().String())
	})
}

// IsStreamURI checks if the provided value is an absolute rtsp, rtsps or http(s) URI
// with a host, as advertised by camera media services.
func IsStreamURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "rtsp", "rtsps", "http", "https":
		return true
	default:
		return false
	}
}
