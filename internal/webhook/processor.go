package webhook

import (
	"context"

	"MercadoPagoBridge/internal/domain/notification"
)

// Processor handles a decoded notification either in-process or by handing
// it to a broker.
type Processor interface {
	Process(ctx context.Context, n notification.Notification) (notification.Outcome, error)
}
