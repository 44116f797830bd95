package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SinaFr/todolist-backend/internal/common"
	"github.com/SinaFr/todolist-backend/internal/server/auth"
)

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// serverError logs err and hides it behind an opaque 500.
func (s *Server) serverError(c echo.Context, err error) error {
	s.logger.Error(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"uri", c.Request().RequestURI,
		"error", err,
	)
	return c.String(http.StatusInternalServerError, "internal error")
}

// issueSession mints a token for username and attaches a fresh session
// cookie to the response.
func (s *Server) issueSession(c echo.Context, username string) error {
	token, err := auth.GenerateToken(username, s.jwtSecret)
	if err != nil {
		return err
	}
	c.SetCookie(auth.NewSessionCookie(token, s.sessionOpts))
	return nil
}

func (s *Server) signup(c echo.Context) error {
	var dto accountDTO
	if err := c.Bind(&dto); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	created, err := s.accounts.Signup(c.Request().Context(), dto.toModel(), dto.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return c.String(http.StatusBadRequest, "Username already exists.")
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusCreated, accountToDTO(created))
}

func (s *Server) login(c echo.Context) error {
	var dto accountDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Login not successful. Please try again!"})
	}

	account, err := s.accounts.Login(c.Request().Context(), dto.Username, dto.Password)
	if err != nil {
		// unknown username and wrong password are answered identically
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Login not successful. Please try again!"})
		}
		return s.serverError(c, err)
	}

	if err := s.issueSession(c, account.Username); err != nil {
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful"})
}

func (s *Server) logout(c echo.Context) error {
	c.SetCookie(auth.ClearSessionCookie(s.sessionOpts))
	return c.String(http.StatusOK, "Logout successful")
}

func (s *Server) me(c echo.Context) error {
	principal := principalFromContext(c)

	account, err := s.accounts.GetByUsername(c.Request().Context(), principal.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.NoContent(http.StatusUnauthorized)
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, accountToDTO(account))
}

// myAccount runs without the auth gate and does its own principal check, so
// it can distinguish "no session" from "session for a vanished account".
func (s *Server) myAccount(c echo.Context) error {
	principal := principalFromContext(c)
	if !principal.Authenticated {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	account, err := s.accounts.GetByUsername(c.Request().Context(), principal.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Account not found"})
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, accountToDTO(account))
}

func (s *Server) usernameCheck(c echo.Context) error {
	available, err := s.accounts.UsernameAvailable(c.Request().Context(), c.Param("username"))
	if err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"available": available})
}

func (s *Server) listAccounts(c echo.Context) error {
	accounts, err := s.accounts.List(c.Request().Context())
	if err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusOK, accountsToDTO(accounts))
}

func (s *Server) getAccount(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid account id")
	}

	account, err := s.accounts.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.String(http.StatusNotFound, "Account not found")
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, accountToDTO(account))
}

func (s *Server) updateAccount(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid account id")
	}

	var dto accountDTO
	if err := c.Bind(&dto); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	account, usernameChanged, err := s.accounts.Update(c.Request().Context(), id, dto.toModel(), dto.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.String(http.StatusNotFound, "Account not found")
		}
		return s.serverError(c, err)
	}

	// The token's only claim is the username. After a rename the old cookie
	// would reference a username that resolves to a different account or
	// none, so a new session is issued for the new username.
	if usernameChanged {
		if err := s.issueSession(c, account.Username); err != nil {
			return s.serverError(c, err)
		}
	}

	return c.JSON(http.StatusOK, accountToDTO(account))
}

func (s *Server) deleteAccount(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid account id")
	}

	account, err := s.accounts.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.String(http.StatusNotFound, "Account not found")
		}
		return s.serverError(c, err)
	}

	// Drop the local session only when the caller deleted themself. The
	// token itself stays cryptographically valid; there is no revocation.
	if principal := principalFromContext(c); principal.Username == account.Username {
		c.SetCookie(auth.ClearSessionCookie(s.sessionOpts))
	}

	return c.String(http.StatusOK, "Account deleted")
}
