package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
)

// FacultyPasswordHeader заголовок с общим паролем преподавателей
const FacultyPasswordHeader = "X-Faculty-Password"

// FacultyAuth пропускает запрос, только если заголовок совпадает с паролем из конфига.
// Это шлагбаум для интерфейса, а не механизм безопасности
func FacultyAuth(password string, log Logger) func(http.Handler) http.Handler {
	expected := []byte(password)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(FacultyPasswordHeader))
			if subtle.ConstantTimeCompare(got, expected) != 1 {
				id, _ := GetRequestID(r.Context())
				log.Warn("[%s] faculty access denied: %s %s", id, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
