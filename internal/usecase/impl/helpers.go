// Package impl implements the usecase contracts against the in-memory store.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "telemock/internal/delivery/context"
	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"

	"github.com/pkg/errors"
)

// loggerFrom prefers the request-scoped logger carried by ctx.
func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// set overwrites *dst when src is present.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func lookupPatient(store *memory.Store, id int) (*entity.User, error) {
	user, ok := store.Users.Find(id)
	if !ok || user.Role != entity.RolePatient {
		return nil, errors.WithStack(domainerrors.ErrPatientNotFound.WithDetails(strconv.Itoa(id)))
	}

	return user, nil
}

func lookupPhysician(store *memory.Store, id int) (*entity.User, error) {
	user, ok := store.Users.Find(id)
	if !ok || user.Role != entity.RolePhysician {
		return nil, errors.WithStack(domainerrors.ErrPhysicianNotFound.WithDetails(strconv.Itoa(id)))
	}

	return user, nil
}

// lookupName resolves id in table, falling back to the first entry.
func lookupName(table *memory.Collection[*entity.Lookup], id int) (int, string) {
	if l, ok := table.Find(id); ok {
		return l.ID, l.Name
	}

	all := table.All()
	if len(all) == 0 {
		return 0, ""
	}

	return all[0].ID, all[0].Name
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
