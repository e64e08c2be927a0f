// Package identity is the boundary between the credential mechanism and the
// core: it resolves a request to a (principal id, role) pair once and puts it
// on the context, so handlers never read ambient session state or raw role
// strings.
package identity

import (
	"context"
	"log/slog"
	"net/http"

	"agroexpo/internal/lib/api/response"
	"agroexpo/internal/lib/logger/sl"
	"agroexpo/internal/models"

	"github.com/go-chi/render"
)

const (
	HeaderPrincipalID   = "X-Principal-Id"
	HeaderPrincipalRole = "X-Principal-Role"
)

type Principal struct {
	ID   string
	Role models.Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

type ctxKey struct{}

// Require rejects requests without a resolvable, non-guest principal.
func Require(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderPrincipalID)
			if id == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("principal id is required"))
				return
			}

			role, err := models.ParseRole(r.Header.Get(HeaderPrincipalRole))
			if err != nil {
				log.Warn("unresolvable principal role", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unknown principal role"))
				return
			}

			if role == models.RoleGuest {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("guests cannot perform this operation"))
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{ID: id, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// WithPrincipal attaches a resolved principal to the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the principal resolved by Require.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}
