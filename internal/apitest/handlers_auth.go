package apitest

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_, _ = utils.WriteError(w, http.StatusBadRequest, "Malformed JSON.", nil)
		return
	}

	fieldErrors := map[string][]string{}
	if req.Name == "" {
		fieldErrors["name"] = []string{"The name field is required."}
	}
	if req.Email == "" {
		fieldErrors["email"] = []string{"The email field is required."}
	}
	if len(req.Password) < 8 {
		fieldErrors["password"] = []string{"The password must be at least 8 characters."}
	} else if req.Password != req.PasswordConfirmation {
		fieldErrors["password"] = []string{"The password confirmation does not match."}
	}

	s.mu.Lock()
	for _, a := range s.users {
		if a.user.Email == req.Email {
			fieldErrors["email"] = []string{"The email has already been taken."}
		}
	}
	if len(fieldErrors) > 0 {
		s.mu.Unlock()
		_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, "The given data was invalid.", fieldErrors)
		return
	}

	a := s.addUserLocked(req.Name, req.Email, req.Password)
	token := s.issueTokenLocked(a.user.ID)
	shape := s.authShape
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, authBody(shape, token, a.user, "User registered successfully"), http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_, _ = utils.WriteError(w, http.StatusBadRequest, "Malformed JSON.", nil)
		return
	}

	s.mu.Lock()
	var found *account
	for _, a := range s.users {
		if a.user.Email == req.Email && a.password == req.Password {
			found = a
		}
	}
	if found == nil {
		s.mu.Unlock()
		_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, "The provided credentials are incorrect.",
			map[string][]string{"email": {"The provided credentials are incorrect."}})
		return
	}
	token := s.issueTokenLocked(found.user.ID)
	shape := s.authShape
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, authBody(shape, token, found.user, "Login successful"), http.StatusOK)
}

func authBody(shape AuthShape, token string, user models.User, message string) map[string]any {
	switch shape {
	case ShapeFlatToken:
		return map[string]any{"token": token, "user": user, "message": message}
	case ShapeAccessToken:
		return map[string]any{"access_token": token, "token_type": "Bearer", "user": user}
	case ShapeMessageOnly:
		return map[string]any{"message": message}
	default:
		return map[string]any{"data": map[string]any{"token": token, "user": user}, "message": message}
	}
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	fail := s.failLogout
	if !fail {
		delete(s.tokens, authFrom(r).token)
	}
	s.mu.Unlock()

	if fail {
		_, _ = utils.WriteError(w, http.StatusInternalServerError, "Server Error", nil)
		return
	}
	_, _ = utils.WriteJSON(w, map[string]string{"message": "Logged out successfully"}, http.StatusOK)
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	s.userCalls.Add(1)

	s.mu.Lock()
	a, ok := s.users[authFrom(r).userID]
	s.mu.Unlock()
	if !ok {
		_, _ = utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.", nil)
		return
	}
	_, _ = utils.WriteJSON(w, map[string]any{"data": a.user}, http.StatusOK)
}
