package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing account id
// means the middleware never ran or the token carried no subject.
func ctxIdentity(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get("account_id").(string)
	if accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	role, _ = c.Get("role").(string)
	return accountID, role, nil
}
