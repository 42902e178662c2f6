package ports

import (
	"context"

	"github.com/ffdias/fincli/internal/domain"
)

// SessionRepository persists the client session across invocations.
// Load on a missing store returns a zero session, not an error.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
