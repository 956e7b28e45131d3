package middleware

import (
	"net/http"

	"go-petclinic/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoverMiddleware struct {
	log *logrus.Logger
}

func NewRecoverMiddleware(log *logrus.Logger) *RecoverMiddleware {
	return &RecoverMiddleware{log: log}
}

// Handle converts handler panics into a 500 response instead of tearing
// down the connection.
func (m *RecoverMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := GetRequestIDFromContext(req.Context())
				m.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"path":       req.URL.Path,
					"panic":      rec,
				}).Error("Recovered from handler panic")
				response.InternalServerError(w, "")
			}
		}()
		next.ServeHTTP(w, req)
	})
}
