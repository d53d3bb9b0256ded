package encoder

import (
	"context"
	"errors"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

// EncodeEventCVTIM wraps the base TIM with the commercial-vehicle extension.
// No TIM field is altered; the extension is attached under its own key. A
// failed spatial lookup degrades to the no-restrictions/no-parking defaults
// and is reported through the returned error for out-of-band counting.
func (e *Encoder) EncodeEventCVTIM(ctx context.Context, event *rcdf.SourceEvent) (*rcdf.TravelerMessage, error) {
	message := e.EncodeEventTIM(event)

	if e.CVResolver == nil {
		return message, errors.New("no commercial vehicle resolver configured")
	}

	extension, err := e.CVResolver.Resolve(ctx, event.Location)
	message.CommercialVehicle = extension

	return message, err
}
