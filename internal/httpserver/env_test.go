package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/repo"
	"github.com/sipline/drink_shop/internal/service"
)

var testJWTSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Drink{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler: &AuthHTTP{
			Svc: &service.AuthService{
				Repo:      gormRepo,
				JWTSecret: testJWTSecret,
				TokenTTL:  time.Hour,
			},
		},
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		CartHandler:    &CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		OrderHandler:   &OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}},
		JWTSecret:      testJWTSecret,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			env.T.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder) map[string]any {
	env.T.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		env.T.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func (env *testEnv) seedDrink(name string, price float64, image string) models.Drink {
	env.T.Helper()

	drink := models.Drink{Name: name, Price: price, Image: image}
	if err := env.DB.Create(&drink).Error; err != nil {
		env.T.Fatalf("seed drink: %v", err)
	}
	return drink
}

func newAuthedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", token)
	return req
}

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
