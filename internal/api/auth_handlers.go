package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/LessUp/PoopRecorder/internal/auth"
	"github.com/LessUp/PoopRecorder/internal/storage"
)

var credValidate = validator.New()

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Register(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := credValidate.Struct(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		user, err := app.Auth().Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrWeakPassword):
				HandleError(c, app.Logger(), err, 400, "Weak password")
			case errors.Is(err, storage.ErrEmailTaken):
				HandleError(c, app.Logger(), err, 409, "Email already registered")
			default:
				HandleError(c, app.Logger(), err, 500, "Registration failed")
			}
			return
		}

		HandleCreated(c, app.Logger(), gin.H{"id": user.ID, "email": user.Email}, nil)
	}
}

func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := credValidate.Struct(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		token, user, err := app.Auth().Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				HandleError(c, app.Logger(), err, 401, "Invalid credentials")
			} else {
				HandleError(c, app.Logger(), err, 500, "Login failed")
			}
			return
		}

		data := gin.H{
			"token": token,
			"user":  gin.H{"id": user.ID, "email": user.Email},
		}
		HandleSuccess(c, app.Logger(), data, nil)
	}
}
