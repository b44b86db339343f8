package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/product-catalog/internal/http"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func postCredentials(r http.Handler, path, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getUser(r http.Handler, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	w := postCredentials(r, "/register", "alice", "password1")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the register response")
	}

	userW := getUser(r, resp.Token)
	if userW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK from /user, got %d", userW.Code)
	}
	var identity handler.UserResponse
	if err := json.NewDecoder(userW.Body).Decode(&identity); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if identity.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", identity.Username)
	}
	if identity.Id == 0 {
		t.Error("expected a non-zero user id")
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	r := api.NewRouter()

	if w := postCredentials(r, "/register", "bob", "password1"); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	if w := postCredentials(r, "/register", "bob", "password2"); w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestRegisterHandler_ShortCredentials(t *testing.T) {
	r := api.NewRouter()

	if w := postCredentials(r, "/register", "cy", "password1"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short username, got %d", w.Code)
	}
	if w := postCredentials(r, "/register", "carol", "pw"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	w := postCredentials(r, "/login", "admin", "secret1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the login response")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	if w := postCredentials(r, "/login", "admin", "wrong-password"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	r := api.NewRouter()

	if w := postCredentials(r, "/login", "nobody", "password1"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestMeHandler_NoToken(t *testing.T) {
	r := api.NewRouter()

	if w := getUser(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestMeHandler_GarbageToken(t *testing.T) {
	r := api.NewRouter()

	if w := getUser(r, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestMeHandler_ValidToken(t *testing.T) {
	r := api.NewRouter()

	w := getUser(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var identity handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&identity); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if identity.Username != "admin" {
		t.Errorf("expected username 'admin', got %q", identity.Username)
	}
}
