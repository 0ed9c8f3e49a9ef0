package middleware

import (
	"fmt"
	"net/http"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/handler/http/response"
)

// RequireRole allows only principals holding one of the given roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFrom(r.Context())
			if principal == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				response.Forbidden(w, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// AdminOnly is shorthand for RequireRole(Admin).
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)
}

// RequirePermission allows only principals whose role grants the permission.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFrom(r.Context())
			if principal == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}
			if !user.HasPermission(principal.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
