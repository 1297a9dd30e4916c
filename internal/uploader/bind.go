package uploader

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Bind resolves the page elements once and attaches the handler to the
// trigger's activation event. Each activation runs in the background with ctx.
func Bind(ctx context.Context, page Page, transcriber Transcriber, logger *zap.Logger) (*Handler, error) {
	trigger, ok := page.Trigger(TriggerID)
	if !ok {
		return nil, fmt.Errorf("element %q not found", TriggerID)
	}
	input, ok := page.FileInput(InputID)
	if !ok {
		return nil, fmt.Errorf("element %q not found", InputID)
	}
	output, ok := page.Output(OutputID)
	if !ok {
		return nil, fmt.Errorf("element %q not found", OutputID)
	}

	h, err := NewHandler(Elements{
		Input:    input,
		Output:   output,
		Notifier: page,
	}, transcriber, logger)
	if err != nil {
		return nil, err
	}

	if d, ok := trigger.(Disabler); ok {
		h.disabler = d
	}

	trigger.OnActivate(func() {
		h.Activate(ctx)
	})

	return h, nil
}
