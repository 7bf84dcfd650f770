package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finbrief/internal/auth"
	"finbrief/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUserStore) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) add(email, password, nickname string) *model.User {
	hashed, _ := auth.HashPassword(password)
	user := &model.User{Email: email, HashedPassword: hashed, Nickname: nickname}
	f.Create(user)
	return user
}

func newAuthTestRouter(users *fakeUserStore, issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(users, issuer)
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/users/me", auth.Middleware(issuer, users), h.Me)
	return r
}

func TestSignup(t *testing.T) {
	users := newFakeUserStore()
	r := newAuthTestRouter(users, auth.NewTokenIssuer("test"))

	body := `{"email": "new@example.com", "password": "secret", "nickname": "테스터"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res UserResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "new@example.com", res.Email)
	assert.Equal(t, "테스터", res.Nickname)

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "secret", users.users["new@example.com"].HashedPassword)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	users.add("taken@example.com", "secret", "")
	r := newAuthTestRouter(users, auth.NewTokenIssuer("test"))

	body := `{"email": "taken@example.com", "password": "secret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Email already registered", res["error"])
}

func TestSignupInvalidBody(t *testing.T) {
	r := newAuthTestRouter(newFakeUserStore(), auth.NewTokenIssuer("test"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(`{"email": "not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	users.add("user@example.com", "secret", "홍길동")
	r := newAuthTestRouter(users, auth.NewTokenIssuer("test"))

	body := `{"username": "user@example.com", "password": "secret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res TokenResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, "홍길동", res.Nickname)
}

func TestLoginDefaultNickname(t *testing.T) {
	users := newFakeUserStore()
	users.add("user@example.com", "secret", "")
	r := newAuthTestRouter(users, auth.NewTokenIssuer("test"))

	body := `{"username": "user@example.com", "password": "secret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res TokenResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "사용자", res.Nickname)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	users.add("user@example.com", "secret", "")
	r := newAuthTestRouter(users, auth.NewTokenIssuer("test"))

	body := `{"username": "user@example.com", "password": "wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestLoginUnknownUser(t *testing.T) {
	r := newAuthTestRouter(newFakeUserStore(), auth.NewTokenIssuer("test"))

	body := `{"username": "ghost@example.com", "password": "secret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	users := newFakeUserStore()
	users.add("user@example.com", "secret", "홍길동")
	issuer := auth.NewTokenIssuer("test")
	r := newAuthTestRouter(users, issuer)

	token, _ := issuer.Issue("user@example.com")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res UserResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "user@example.com", res.Email)
	assert.Equal(t, "홍길동", res.Nickname)
}

func TestMeWithoutToken(t *testing.T) {
	r := newAuthTestRouter(newFakeUserStore(), auth.NewTokenIssuer("test"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}
