package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/racional/racional-backend/internal/api/response"
)

// Recoverer catches panics from downstream handlers, logs the stack trace,
// and answers with the API's uniform 500 body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				log.Printf("panic: %v\n%s", rvr, debug.Stack())
				response.RespondInternalError(w, fmt.Errorf("%v", rvr))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
