package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hrlite/crm-backend-go/internal/domain/auth"
	"github.com/hrlite/crm-backend-go/internal/handler/http/middleware"
	"github.com/hrlite/crm-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	SignUp(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// SignIn implements AuthHandler
func (h *authHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var req auth.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.SignIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SignUp implements AuthHandler
func (h *authHandlerImpl) SignUp(w http.ResponseWriter, r *http.Request) {
	var req auth.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.SignUp(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created successfully! Please sign in.", result)
}

// SignOut implements AuthHandler
func (h *authHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	h.authService.SignOut(r.Context(), token)
	response.SuccessWithMessage(w, "Signed out", nil)
}

// Me implements AuthHandler. The client calls it on load to restore the
// signed-in user bound to its stored token.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid or expired session")
		return
	}

	response.Success(w, auth.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	})
}
