package webhook

import (
	"context"

	"MercadoPagoBridge/internal/domain/notification"
)

type Handler interface {
	Handle(ctx context.Context, n notification.Notification) (notification.Outcome, error)
}

// SyncProcessor runs the confirmation flow within the request.
type SyncProcessor struct {
	handler Handler
}

func NewSyncProcessor(h Handler) *SyncProcessor {
	return &SyncProcessor{handler: h}
}

func (p *SyncProcessor) Process(ctx context.Context, n notification.Notification) (notification.Outcome, error) {
	return p.handler.Handle(ctx, n)
}
