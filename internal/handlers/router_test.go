package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campushire/campushire/internal/database"
	"github.com/campushire/campushire/internal/media"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "router-test-secret"

var dbSeq int

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbSeq++
	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	zlog := zap.NewNop()
	store, err := media.NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("media store: %v", err)
	}
	mediaService := media.NewService(store, zlog)

	profileService := services.NewProfileService(db, mediaService)
	set := &Set{
		Auth:         NewAuthHandler(services.NewAuthService(db, testSecret), zlog),
		Company:      NewCompanyHandler(services.NewCompanyService(db, mediaService), zlog),
		Jobs:         NewJobHandler(services.NewJobService(db), zlog),
		Applications: NewApplicationHandler(services.NewApplicationService(db, profileService), zlog),
		Profile:      NewProfileHandler(profileService, zlog),
		University:   NewUniversityHandler(services.NewUniversityService(db, mediaService), zlog),
	}

	r := gin.New()
	RegisterRoutes(r, testSecret, set)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, r *gin.Engine, role string) string {
	t.Helper()
	dbSeq++
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Test " + role,
		"email":    fmt.Sprintf("%s%d@example.com", role, dbSeq),
		"password": "hunter2hunter2",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", role, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("register returned no token")
	}
	return token
}

func TestPublishScenarioEndToEnd(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerUser(t, r, "company")

	// No company profile yet: publish must 404.
	w := doJSON(t, r, http.MethodPost, "/api/company/publish", token, map[string]interface{}{"title": "Engineer"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("publish without company: status %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/company", token, map[string]interface{}{"name": "Acme Corp"})
	if w.Code != http.StatusOK {
		t.Fatalf("save company: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/company/publish", token, map[string]interface{}{
		"title":     "Engineer",
		"job_types": []string{"Full-time"},
		"custom_questions": []map[string]interface{}{
			{"text": "Why us?", "required": true},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("publish: status %d body %s", w.Code, w.Body.String())
	}
	job, _ := decode(t, w)["job"].(map[string]interface{})
	if job["title"] != "Engineer" {
		t.Errorf("job.title = %v, want Engineer", job["title"])
	}
	jobID := int(job["id"].(float64))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/company/publish/%d", jobID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get job: status %d body %s", w.Code, w.Body.String())
	}
	fetched, _ := decode(t, w)["job"].(map[string]interface{})
	if fetched["title"] != "Engineer" {
		t.Errorf("fetched title = %v, want Engineer", fetched["title"])
	}
	questions, _ := fetched["custom_questions"].([]interface{})
	if len(questions) != 1 {
		t.Fatalf("custom_questions = %v, want one entry", fetched["custom_questions"])
	}
	q := questions[0].(map[string]interface{})
	if q["is_required"] != true {
		t.Errorf("is_required = %v, want true", q["is_required"])
	}
}

func TestForeignJobAccessIs404Not403(t *testing.T) {
	r, _ := newTestRouter(t)
	owner := registerUser(t, r, "company")
	intruder := registerUser(t, r, "company")

	for _, token := range []string{owner, intruder} {
		w := doJSON(t, r, http.MethodPut, "/api/company", token, map[string]interface{}{"name": "Corp"})
		if w.Code != http.StatusOK {
			t.Fatalf("save company: status %d", w.Code)
		}
	}
	w := doJSON(t, r, http.MethodPost, "/api/company/publish", owner, map[string]interface{}{"title": "Engineer"})
	if w.Code != http.StatusOK {
		t.Fatalf("publish: status %d", w.Code)
	}
	job, _ := decode(t, w)["job"].(map[string]interface{})
	jobID := int(job["id"].(float64))

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doJSON(t, r, method, fmt.Sprintf("/api/company/publish/%d", jobID), intruder, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s foreign job: status %d, want 404 (never 403)", method, w.Code)
		}
	}
}

func TestRoleGates(t *testing.T) {
	r, _ := newTestRouter(t)
	student := registerUser(t, r, "student")

	w := doJSON(t, r, http.MethodGet, "/api/company/publish", student, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("student on company route: status %d, want 403", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/profile", student, nil)
	if w.Code != http.StatusOK {
		t.Errorf("student profile: status %d, want 200", w.Code)
	}
}

func TestStudentApplyFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	company := registerUser(t, r, "company")
	student := registerUser(t, r, "student")

	w := doJSON(t, r, http.MethodPut, "/api/company", company, map[string]interface{}{"name": "Acme"})
	if w.Code != http.StatusOK {
		t.Fatalf("save company: status %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/company/publish", company, map[string]interface{}{
		"title": "Engineer", "status": "published",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("publish: status %d", w.Code)
	}
	job, _ := decode(t, w)["job"].(map[string]interface{})
	jobID := int(job["id"].(float64))

	// Board is public.
	w = doJSON(t, r, http.MethodGet, "/api/jobs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("browse: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), student, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("apply: status %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), student, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("second apply: status %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/company/job/%d/application-stats", jobID), company, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status %d", w.Code)
	}
	stats := decode(t, w)
	if stats["total"].(float64) != 1 {
		t.Errorf("stats total = %v, want 1", stats["total"])
	}
}
