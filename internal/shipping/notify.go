package shipping

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier renders shipment notices as structured log events. It
// is the default notice sink when no external carrier integration is
// configured.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify logs one event per product line plus a shipment summary.
func (n LogNotifier) Notify(ctx context.Context, notice Notice) {
	for _, line := range notice.Lines {
		n.Logger.Info().
			Str("product", line.Name).
			Int("count", line.Count).
			Str("unit_weight", line.UnitWeight.String()).
			Msg("shipment notice line")
	}
	n.Logger.Info().
		Int("lines", len(notice.Lines)).
		Str("total_weight", notice.TotalWeight.String()).
		Msg("shipment dispatched")
}
