package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/server/auth"
)

type ctxKey string

const gatewayKey ctxKey = "gateway"

func (s *HTTPServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			writeError(w, http.StatusUnauthorized, common.ErrorUnauthorized.Error())
			return
		}

		gateway, err := auth.GetGatewayFromToken(strings.TrimSpace(token), s.jwtSecret)
		if err != nil {
			msg := common.ErrorUnauthorized.Error()
			if errors.Is(err, common.ErrTokenExpired) {
				msg = common.ErrTokenExpired.Error()
			}
			s.logger.Warn(r.Context(), "rejected webhook call", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusUnauthorized, msg)
			return
		}

		ctx := context.WithValue(r.Context(), gatewayKey, gateway)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func gatewayFromContext(ctx context.Context) string {
	g, _ := ctx.Value(gatewayKey).(string)
	return g
}
