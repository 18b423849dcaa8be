package httpserver

import (
	"net/http"

	"quickbite/internal/domain"
	authsvc "quickbite/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func signupHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in authsvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		u, token, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success":   true,
			"token":     token,
			"expiresIn": svc.TokenTTLSeconds(),
			"user":      u,
		})
	}
}

func loginHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		if in.Email == "" || in.Password == "" {
			respondError(c, domain.Validation("email", "email and password required"))
			return
		}
		u, token, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"token":     token,
			"expiresIn": svc.TokenTTLSeconds(),
			"user":      u,
		})
	}
}

// verifyHandler runs behind authMiddleware, so reaching it means the token
// was valid.
func verifyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user": currentUser(c)})
	}
}

func logoutHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			svc.Logout(c.Request.Context(), token)
		}
		respondMessage(c, http.StatusOK, "logged out")
	}
}
