package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enotalexnot/ztk-catalog/internal/auth"
	"github.com/enotalexnot/ztk-catalog/internal/models"
)

const sessionCookie = "admin_session"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// requireAdmin resolves the session cookie to an admin and aborts with 401
// otherwise. The cookie is the only gate on mutating admin routes.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookie)
		admin, err := s.auth.Validate(token)
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Set("admin", admin)
		c.Next()
	}
}

func currentAdmin(c *gin.Context) *models.Admin {
	v, _ := c.Get("admin")
	admin, _ := v.(*models.Admin)
	return admin
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	admin, session, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, session.Token, int(auth.SessionTTL.Seconds()), "/", "", s.cfg.Env == "prod", true)
	c.JSON(http.StatusOK, gin.H{"admin": gin.H{"id": admin.ID, "username": admin.Username}})
}

func (s *Server) logout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookie)
	if err := s.auth.Logout(token); err != nil {
		fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", s.cfg.Env == "prod", true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) me(c *gin.Context) {
	admin := currentAdmin(c)
	c.JSON(http.StatusOK, gin.H{"admin": gin.H{"id": admin.ID, "username": admin.Username}})
}

// createAdmin bootstraps the first admin account. Once any admin exists
// the endpoint refuses, so it never becomes an open registration door.
func (s *Server) createAdmin(c *gin.Context) {
	var req createAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := s.store.CountAdmins()
	if err != nil {
		fail(c, err)
		return
	}
	if n > 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin already exists"})
		return
	}
	admin, err := s.auth.CreateAdmin(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"admin": gin.H{"id": admin.ID, "username": admin.Username}})
}
