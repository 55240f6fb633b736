package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"waterReminderAPI/internal/token"
	"waterReminderAPI/internal/user"
	"waterReminderAPI/services"
)

type AuthHandler struct {
	userService *services.UserService
	tokens      *token.Manager
}

func NewAuthHandler(userService *services.UserService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	created, err := h.userService.Register(ctx, &req)
	if err != nil {
		log.Printf("Register Handler: Service error: %v", err)
		errMsg := err.Error()
		switch {
		case errMsg == "email already registered" || strings.Contains(errMsg, "password must be"):
			respondWithError(w, http.StatusBadRequest, errMsg)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	authed, err := h.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		errMsg := err.Error()
		switch errMsg {
		case "invalid email or password":
			respondWithError(w, http.StatusUnauthorized, errMsg)
		case "user account is inactive":
			respondWithError(w, http.StatusBadRequest, errMsg)
		default:
			log.Printf("Login Handler: Service error: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	accessToken, err := h.tokens.Issue(authed.ID)
	if err != nil {
		log.Printf("Login Handler: Failed to issue token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, user.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
