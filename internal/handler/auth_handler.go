package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/virtualdesk/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login verifies credentials and opens an admin session.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not save session, please retry",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if key, ok := session.Get(selectionSessionKey).(string); ok {
		a.selections.Remove(key)
	}
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders the admin overview with store counts.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var pageCount, leadCount, locationCount int64
	a.db.Model(&db.DynamicPage{}).Count(&pageCount)
	a.db.Model(&db.Lead{}).Count(&leadCount)
	a.db.Model(&db.Location{}).Count(&locationCount)

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":         "Dashboard",
		"username":      username,
		"pageCount":     pageCount,
		"leadCount":     leadCount,
		"locationCount": locationCount,
	})
}

// AuthRequired redirects unauthenticated admin requests to the login
// page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
