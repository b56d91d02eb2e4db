package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/asphaltlabs/asphalt-companion/internal/user"
)

func SetupJWTMiddleware(tokens *user.TokenIssuer) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: tokens.Secret(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		// missing and invalid tokens both reject with 401
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		},
	})
}

// SubjectID returns the user id carried by the token the JWT middleware
// already verified for this request.
func SubjectID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return 0, false
	}
	return claims.Id, true
}
