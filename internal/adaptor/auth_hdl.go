package adaptor

import (
	"encoding/json"
	"net/http"

	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"
	"airport-ops/internal/usecase"
	"airport-ops/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth usecase.AuthService
	otp  usecase.OTPService
	log  *zap.Logger
}

func NewAuthHandler(auth usecase.AuthService, otp usecase.OTPService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		otp:  otp,
		log:  log,
	}
}

// RequestOTP handles POST /api/request-otp
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req request.RequestOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "phone is required")
		return
	}

	code, err := h.otp.RequestCode(r.Context(), req.Phone)
	if err != nil {
		handleServiceError(w, h.log, err, "request OTP")
		return
	}

	// The code is returned directly; a real deployment would deliver it
	// via SMS instead.
	utils.ResponseSuccess(w, response.OTPResponse{
		Message: "OTP generated",
		OTP:     code,
	})
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "name, email, password, phone and otp are required")
		return
	}

	user, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, user)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "email and password are required")
		return
	}

	user, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	// No token or session: the body carries the user object only.
	utils.ResponseSuccess(w, response.LoginResponse{User: *user})
}

// ChangePassword handles POST /api/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "user_id, old_password, and new_password are required")
		return
	}

	if err := h.auth.ChangePassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{Message: "Password updated successfully"})
}
