package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"brandcollab/internal/core/domain"
)

// Identity headers set by the upstream authentication layer.
const (
	headerActorID    = "X-Actor-ID"
	headerActorRole  = "X-Actor-Role"
	headerActorName  = "X-Actor-Name"
	headerActorEmail = "X-Actor-Email"
)

type actorKey struct{}

// requireActor reads the already-authenticated identity from the request
// headers. Requests without a usable identity are answered with 401.
func (h *Handler) requireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(headerActorID))
		if id == "" {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "missing "+headerActorID+" header")
			return
		}
		role, err := domain.ParseRole(r.Header.Get(headerActorRole))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "missing or invalid "+headerActorRole+" header")
			return
		}
		actor := domain.Actor{
			ID:    id,
			Role:  role,
			Name:  strings.TrimSpace(r.Header.Get(headerActorName)),
			Email: strings.TrimSpace(r.Header.Get(headerActorEmail)),
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
	})
}

func actorFrom(r *http.Request) domain.Actor {
	actor, _ := r.Context().Value(actorKey{}).(domain.Actor)
	return actor
}
