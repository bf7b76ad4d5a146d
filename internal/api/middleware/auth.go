package middleware

import (
	"context"
	"errors"
	"net/http"
	"wings_inventory/internal/common"
	"wings_inventory/internal/domain/model"

	"github.com/sirupsen/logrus"
)

type contextKey string

const UsernameCtxKey contextKey = "username"

// CredentialChecker verifies a username/password pair.
type CredentialChecker interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

// BasicAuthenticator guards management routes with HTTP Basic credentials
// checked against the user roster on every request. Nothing is issued or
// remembered between requests.
func BasicAuthenticator(checker CredentialChecker, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || username == "" {
				challenge(w)
				return
			}

			user, err := checker.Authenticate(r.Context(), username, password)
			if err != nil {
				if errors.Is(err, common.ErrInvalidCredentials) {
					challenge(w)
					return
				}
				log.WithError(err).WithField("request_id", RequestIDFrom(r.Context())).Error("admin credential check failed")
				common.RespondWithDomainError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameCtxKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="wings", charset="UTF-8"`)
	common.RespondWithDomainError(w, common.ErrUnauthorized)
}

// GetUsernameFromContext returns the caller authenticated by BasicAuthenticator.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
