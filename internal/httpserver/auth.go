package httpserver

import (
	"log"
	"net/http"

	"huerto-hogar/internal/service/login"
	"huerto-hogar/internal/service/registration"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Lastname        string `json:"lastname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
}

// loginHandler runs one full login flow per request: a fresh form, field
// input, submit, then the terminal result is consumed and cleared.
func loginHandler(logger *log.Logger, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
			return
		}

		flow := login.New(deps.Users, deps.Session, deps.SubmitTimeout, logger)
		defer flow.Close()
		flow.SetEmail(req.Email)
		flow.SetPassword(req.Password)
		flow.Submit(c.Request.Context())

		state := flow.Snapshot()
		result := state.Result
		flow.ClearResult()

		switch result {
		case login.ResultSuccess:
			c.JSON(http.StatusOK, gin.H{"user": state.User})
		case login.ResultInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Correo o contraseña incorrectos"})
		case login.ResultError:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al iniciar sesión. Intente más tarde"})
		default:
			// No terminal result: validation kept the form in editing.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": state.Errors})
		}
	}
}

// registerHandler mirrors loginHandler for the registration flow.
func registerHandler(logger *log.Logger, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
			return
		}

		flow := registration.New(deps.Users, deps.SubmitTimeout, logger)
		defer flow.Close()
		flow.SetName(req.Name)
		flow.SetLastname(req.Lastname)
		flow.SetEmail(req.Email)
		flow.SetPassword(req.Password)
		flow.SetConfirmPassword(req.ConfirmPassword)
		flow.SetAddress(req.Address)
		flow.SetPhone(req.Phone)
		flow.Submit(c.Request.Context())

		state := flow.Snapshot()
		result := state.Result
		flow.ClearResult()

		switch result {
		case registration.ResultSuccess:
			c.JSON(http.StatusCreated, gin.H{"user": state.User})
		case registration.ResultEmailAlreadyExists:
			c.JSON(http.StatusConflict, gin.H{"message": "El correo electrónico ya está registrado"})
		case registration.ResultError:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al registrar. Verifique sus datos o intente más tarde"})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": state.Errors})
		}
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Session.Logout()
		c.Status(http.StatusNoContent)
	}
}

func currentUserHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := deps.Session.CurrentUser()
		if u == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "no hay sesión activa"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}
