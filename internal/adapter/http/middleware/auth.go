package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"roads_authority/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"

	// ContextAdminKey holds the authenticated admin's email (or subject).
	ContextAdminKey = "admin_actor"
)

// AdminClaims is the token payload issued to Roads Authority staff.
type AdminClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var errMissingBearer = errors.New("missing bearer token")

// RequireAdmin accepts HS256 tokens signed with secret whose role is admin.
// An empty secret rejects every request.
func RequireAdmin(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	return func(c *gin.Context) {
		claims, err := parseAdminToken(parser, secret, c.GetHeader("Authorization"))
		if err != nil {
			log.Printf("[auth][http] rejected path=%s err=%v", c.FullPath(), err)
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if claims.Role != RoleAdmin {
			log.Printf("[auth][http] forbidden path=%s subject=%s role=%s", c.FullPath(), claims.Subject, claims.Role)
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		actor := claims.Email
		if actor == "" {
			actor = claims.Subject
		}
		c.Set(ContextAdminKey, actor)
		c.Next()
	}
}

func parseAdminToken(parser *jwt.Parser, secret, header string) (*AdminClaims, error) {
	if secret == "" {
		return nil, errors.New("jwt secret not configured")
	}
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, errMissingBearer
	}
	claims := &AdminClaims{}
	_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// AdminActor returns the identity stored by RequireAdmin, or "" outside admin routes.
func AdminActor(c *gin.Context) string {
	return c.GetString(ContextAdminKey)
}
