package cfgloader

import (
	"encoding/json"
	"log/slog"

	"github.com/rise-and-shine/mediadevice/mask"
)

// printConfig prints the loaded config with `mask:"true"` fields hidden.
func printConfig(config any) {
	out, err := json.MarshalIndent(mask.StructToOrdMap(config), "", "  ")
	if err != nil {
		slog.Error("[cfgloader]: failed to marshal config", "error", err.Error())
		return
	}
	slog.Info("[cfgloader]: loaded config:\n" + string(out))
}
