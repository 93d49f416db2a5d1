package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"do-it-now/internal/application/middleware"
	"do-it-now/internal/domain/entity"
	"do-it-now/internal/domain/model"
	"do-it-now/internal/domain/usecase/auth"
	"do-it-now/internal/domain/usecase/todo"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// In-memory gateways backing a full HTTP stack: real controllers, real
// middleware, real usecases, no database.

type fakeUserGateway struct {
	users []entity.User
}

func (g *fakeUserGateway) FindByID(id uuid.UUID) (*entity.User, error) {
	for _, u := range g.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (g *fakeUserGateway) FindByEmail(email string) (*entity.User, error) {
	for _, u := range g.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (g *fakeUserGateway) ExistsByEmail(email string) (bool, error) {
	user, _ := g.FindByEmail(email)
	return user != nil, nil
}

func (g *fakeUserGateway) Create(user entity.User) (*entity.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	g.users = append(g.users, user)
	created := user
	return &created, nil
}

func (g *fakeUserGateway) Update(user *entity.User) (*entity.User, error) {
	for i, u := range g.users {
		if u.ID == user.ID {
			g.users[i] = *user
			updated := *user
			return &updated, nil
		}
	}
	return nil, errors.New("user not found")
}

type fakeTokenGateway struct {
	tokens []entity.AccessToken
}

func (g *fakeTokenGateway) Create(token entity.AccessToken) (*entity.AccessToken, error) {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	g.tokens = append(g.tokens, token)
	created := token
	return &created, nil
}

func (g *fakeTokenGateway) FindByHash(hash string) (*entity.AccessToken, error) {
	for _, t := range g.tokens {
		if t.TokenHash == hash {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (g *fakeTokenGateway) FindByUserID(userID uuid.UUID) ([]entity.AccessToken, error) {
	var out []entity.AccessToken
	for _, t := range g.tokens {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (g *fakeTokenGateway) TouchLastUsed(id uuid.UUID, at time.Time) error {
	for i, t := range g.tokens {
		if t.ID == id {
			g.tokens[i].LastUsedAt = &at
			return nil
		}
	}
	return nil
}

func (g *fakeTokenGateway) DeleteByHash(hash string) error {
	for i, t := range g.tokens {
		if t.TokenHash == hash {
			g.tokens = append(g.tokens[:i], g.tokens[i+1:]...)
			return nil
		}
	}
	return nil
}

func (g *fakeTokenGateway) DeleteExpired(now time.Time) (int64, error) {
	var kept []entity.AccessToken
	var removed int64
	for _, t := range g.tokens {
		if t.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	g.tokens = kept
	return removed, nil
}

type fakeTodoGateway struct {
	todos []entity.Todo
	seq   int64
}

func (g *fakeTodoGateway) FindAllByUserID(userID uuid.UUID) ([]entity.Todo, error) {
	var out []entity.Todo
	for _, t := range g.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

func (g *fakeTodoGateway) FindByID(id uuid.UUID) (*entity.Todo, error) {
	for _, t := range g.todos {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (g *fakeTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}
	if todo.CreatedAt.IsZero() {
		g.seq++
		todo.CreatedAt = time.Unix(1700000000+g.seq, 0)
	}
	todo.UpdatedAt = todo.CreatedAt
	g.todos = append(g.todos, todo)
	created := todo
	return &created, nil
}

func (g *fakeTodoGateway) Update(todo *entity.Todo) (*entity.Todo, error) {
	for i, t := range g.todos {
		if t.ID == todo.ID {
			g.todos[i] = *todo
			updated := *todo
			return &updated, nil
		}
	}
	return nil, errors.New("todo not found")
}

func (g *fakeTodoGateway) DeleteByID(id uuid.UUID) error {
	for i, t := range g.todos {
		if t.ID == id {
			g.todos = append(g.todos[:i], g.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

type testServer struct {
	echo  *echo.Echo
	todos *fakeTodoGateway
}

func newTestServer() *testServer {
	users := &fakeUserGateway{}
	tokens := &fakeTokenGateway{}
	todos := &fakeTodoGateway{}

	e := echo.New()
	api := e.Group("/api")

	authUseCase := auth.NewAuthUseCase(users, tokens, nil, 0)
	todoUseCase := todo.NewTodoUseCase(todos)
	authMw := middleware.BearerAuth(authUseCase)

	NewAuthController(api, authUseCase, authMw).InitAuthRoutes()
	NewTodoController(api, todoUseCase, authMw).InitTodoRoutes()

	return &testServer{echo: e, todos: todos}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func (s *testServer) registerUser(t *testing.T, name, email string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/register", "", model.RegisterDTO{
		Name:                 name,
		Email:                email,
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	var response model.AuthResponse
	decode(t, rec, &response)
	return response.Token
}

func TestRegisterLoginFlow(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodPost, "/api/register", "", model.RegisterDTO{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", rec.Code)
	}
	var registered model.AuthResponse
	decode(t, rec, &registered)
	if registered.Token == "" || registered.User == nil {
		t.Fatalf("register response incomplete: %s", rec.Body.String())
	}

	rec = server.do(t, http.MethodPost, "/api/login", "", model.LoginDTO{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", rec.Code)
	}

	rec = server.do(t, http.MethodPost, "/api/login", "", model.LoginDTO{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", rec.Code)
	}
	var loggedIn model.AuthResponse
	decode(t, rec, &loggedIn)
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("login resolved %s, want %s", loggedIn.User.ID, registered.User.ID)
	}
}

func TestRegisterValidationResponse(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodPost, "/api/register", "", model.RegisterDTO{
		Name:                 "Alice",
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: "short",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var payload struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decode(t, rec, &payload)
	if payload.Message == "" {
		t.Error("validation response missing message")
	}
	for _, field := range []string{"email", "password"} {
		if _, ok := payload.Errors[field]; !ok {
			t.Errorf("errors = %v, want entry for %q", payload.Errors, field)
		}
	}
}

func TestTodosRequireAuthentication(t *testing.T) {
	server := newTestServer()

	for _, probe := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/todos"},
		{http.MethodPost, "/api/todos"},
		{http.MethodPut, "/api/todos/" + uuid.NewString()},
		{http.MethodDelete, "/api/todos/" + uuid.NewString()},
		{http.MethodGet, "/api/user"},
		{http.MethodPost, "/api/logout"},
	} {
		rec := server.do(t, probe.method, probe.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", probe.method, probe.path, rec.Code)
		}
	}
}

func TestTodoCrudFlow(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodPost, "/api/todos", token, model.CreateTodoDTO{
		Title:    "Buy milk",
		Priority: "Medium",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created entity.Todo
	decode(t, rec, &created)
	if created.Completed {
		t.Error("new todo should start incomplete")
	}

	rec = server.do(t, http.MethodPost, "/api/todos", token, model.CreateTodoDTO{
		Title:    "Walk the dog",
		Priority: "High",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("second create status = %d", rec.Code)
	}

	rec = server.do(t, http.MethodGet, "/api/todos", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var todos []entity.Todo
	decode(t, rec, &todos)
	if len(todos) != 2 {
		t.Fatalf("list length = %d, want 2", len(todos))
	}
	if todos[0].Title != "Walk the dog" || todos[1].Title != "Buy milk" {
		t.Errorf("order = [%s %s], want newest first", todos[0].Title, todos[1].Title)
	}

	completed := true
	rec = server.do(t, http.MethodPut, "/api/todos/"+created.ID.String(), token, model.UpdateTodoDTO{
		Title:     "Buy milk",
		Priority:  "Medium",
		Completed: &completed,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	var updated entity.Todo
	decode(t, rec, &updated)
	if !updated.Completed {
		t.Error("completion not applied")
	}

	rec = server.do(t, http.MethodGet, "/api/todos", token, nil)
	decode(t, rec, &todos)
	for _, item := range todos {
		if item.ID == created.ID && !item.Completed {
			t.Error("completion not visible in list")
		}
	}

	rec = server.do(t, http.MethodDelete, "/api/todos/"+created.ID.String(), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	rec = server.do(t, http.MethodDelete, "/api/todos/"+created.ID.String(), token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestTodoOwnershipIsolation(t *testing.T) {
	server := newTestServer()
	aliceToken := server.registerUser(t, "Alice", "alice@example.com")
	bobToken := server.registerUser(t, "Bob", "bob@example.com")

	rec := server.do(t, http.MethodPost, "/api/todos", aliceToken, model.CreateTodoDTO{
		Title:    "Alice's secret plan",
		Priority: "High",
	})
	var created entity.Todo
	decode(t, rec, &created)

	rec = server.do(t, http.MethodGet, "/api/todos", bobToken, nil)
	var bobTodos []entity.Todo
	decode(t, rec, &bobTodos)
	if len(bobTodos) != 0 {
		t.Errorf("bob sees %d foreign todos", len(bobTodos))
	}

	rec = server.do(t, http.MethodPut, "/api/todos/"+created.ID.String(), bobToken, model.UpdateTodoDTO{
		Title:    "Bob's now",
		Priority: "Low",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign update status = %d, want 403", rec.Code)
	}

	rec = server.do(t, http.MethodDelete, "/api/todos/"+created.ID.String(), bobToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign delete status = %d, want 403", rec.Code)
	}
	if len(server.todos.todos) != 1 {
		t.Error("foreign access modified stored todos")
	}
}

func TestCreateTodoInvalidPriority(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodPost, "/api/todos", token, model.CreateTodoDTO{
		Title:    "Urgent thing",
		Priority: "Urgent",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if len(server.todos.todos) != 0 {
		t.Error("invalid todo was persisted")
	}
}

func TestCreateTodoWithoutDueDate(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodPost, "/api/todos", token, model.CreateTodoDTO{
		Title:    "No deadline",
		Priority: "Low",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload map[string]interface{}
	decode(t, rec, &payload)
	if value, ok := payload["due_at"]; !ok || value != nil {
		t.Errorf("due_at = %v, want explicit null", value)
	}
}

func TestMalformedTodoID(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodPut, "/api/todos/not-a-uuid", token, model.UpdateTodoDTO{
		Title:    "x",
		Priority: "Low",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodPost, "/api/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", rec.Code)
	}

	rec = server.do(t, http.MethodGet, "/api/user", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status after logout = %d, want 401", rec.Code)
	}
}

func TestUserProfile(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodPut, "/api/user", token, model.UpdateProfileDTO{Name: "Alice Cooper"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update profile status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = server.do(t, http.MethodGet, "/api/user", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get user status = %d", rec.Code)
	}
	var user entity.User
	decode(t, rec, &user)
	if user.Name != "Alice Cooper" {
		t.Errorf("name = %q, want updated name", user.Name)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, want unchanged", user.Email)
	}
}

func TestUserResponseHidesPasswordHash(t *testing.T) {
	server := newTestServer()
	token := server.registerUser(t, "Alice", "alice@example.com")

	rec := server.do(t, http.MethodGet, "/api/user", token, nil)
	var payload map[string]interface{}
	decode(t, rec, &payload)
	for _, secret := range []string{"password_hash", "PasswordHash", "password"} {
		if _, ok := payload[secret]; ok {
			t.Errorf("user payload leaks %q", secret)
		}
	}
}
