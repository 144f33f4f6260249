package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const registeredMessage = "User registered successfully"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.AuthService.RegisterUser(ctx, credentials); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("user successfully registered")
	utils.WriteJSON(w, models.MessageResponse{Message: registeredMessage}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
