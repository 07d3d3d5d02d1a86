package httpx

import (
	"net/http"

	"go.uber.org/zap"
)

func RecoveryMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					log.Error("panic recovered",
						zap.String("request_id", RequestIDFrom(r)),
						zap.Any("error", err),
						zap.Stack("stack"),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						JSONError(w, http.StatusInternalServerError, "Erro interno do servidor")
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
