package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/handler/http/response"
)

type principalKey struct{}

// AuthRequired rejects requests without a valid access token and stashes
// the authenticated Principal in the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			principal, ok := principalFromClaims(claims)
			if !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// PrincipalFrom returns the authenticated principal, or nil when the
// request did not pass AuthRequired.
func PrincipalFrom(ctx context.Context) *user.Principal {
	principal, _ := ctx.Value(principalKey{}).(*user.Principal)
	return principal
}

// WithPrincipal injects a principal directly. Test hook.
func WithPrincipal(ctx context.Context, principal *user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func principalFromClaims(claims map[string]interface{}) (*user.Principal, bool) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, false
	}

	principal := &user.Principal{
		UserID: userID,
		Role:   user.Role(role),
	}
	if locationID, ok := claims["location_id"].(string); ok && locationID != "" {
		principal.LocationID = &locationID
	}
	if departmentID, ok := claims["department_id"].(string); ok && departmentID != "" {
		principal.DepartmentID = &departmentID
	}

	return principal, true
}
