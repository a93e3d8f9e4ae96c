package middleware

import (
	"net"
	"net/http"

	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/callpoint-hr/timeclock-backend-go/internal/repository/postgresql"
)

// IPAllowed gates the whole API on the allowed_ips table. Loopback always
// passes so local operation never locks itself out. When the lookup itself
// fails the request is denied, not waved through.
func IPAllowed(repo postgresql.AllowedIPRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			ip := net.ParseIP(host)
			if ip != nil && ip.IsLoopback() {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := repo.IsAllowed(r.Context(), host)
			if err != nil {
				response.InternalServerError(w, "Could not verify client address")
				return
			}
			if !allowed {
				response.Forbidden(w, "Client address is not allowed")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
