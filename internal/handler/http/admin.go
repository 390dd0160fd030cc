package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clinika/kiosk-backend-go/internal/domain/admin"
	"github.com/clinika/kiosk-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// Login implements AdminHandler.
func (a *AdminHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq admin.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := a.adminService.LoginAdmin(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin logged in", "username", tokens.Username)
	response.SuccessWithMessage(w, "Login successful", tokens)
}
