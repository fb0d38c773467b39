package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestRouter mounts the same route table as main.
func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", Register(db, testSecret))
	auth.POST("/login", Login(db, testSecret))
	auth.GET("/me", RequireAuth(db, testSecret), GetMe())

	questions := api.Group("/questions", RequireAuth(db, testSecret))
	questions.GET("/next", NextQuestion(db))
	questions.POST("/:id/answer", SubmitAnswer(db))

	progress := api.Group("/progress", RequireAuth(db, testSecret))
	progress.GET("/dashboard", Dashboard(db))

	return r
}

func createTestUser(t *testing.T, db *gorm.DB) User {
	t.Helper()
	u := User{
		ID:               uuid.New().String(),
		Email:            uuid.New().String() + "@example.com",
		PasswordHash:     "x",
		Name:             "Test User",
		SubscriptionTier: "FREE",
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// createTestQuestion inserts a question with options a..d and the given
// correct set. Explicit ids keep the selector's ORDER BY id deterministic.
func createTestQuestion(t *testing.T, db *gorm.DB, id, category, qtype string, correct []string) Question {
	t.Helper()
	q := Question{
		ID:         id,
		Content:    "Question " + id,
		Type:       qtype,
		Category:   category,
		Difficulty: "EASY",
		AllAnswers: datatypes.JSONSlice[AnswerOption]{
			{ID: "a", Text: "Option A"},
			{ID: "b", Text: "Option B"},
			{ID: "c", Text: "Option C"},
			{ID: "d", Text: "Option D"},
		},
		CorrectAnswers: datatypes.JSONSlice[string](correct),
		Explanation:    "Explanation for " + id,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

// createTestAnswer inserts an answer row with an explicit timestamp so
// recency ordering stays deterministic under fast successive inserts.
func createTestAnswer(t *testing.T, db *gorm.DB, userID, questionID string, correct bool, points int, at time.Time) {
	t.Helper()
	a := UserAnswer{
		ID:              uuid.New().String(),
		UserID:          userID,
		QuestionID:      questionID,
		SelectedAnswers: datatypes.JSONSlice[string]{"a"},
		IsCorrect:       correct,
		PointsEarned:    points,
		CreatedAt:       at,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create answer: %v", err)
	}
}

func authHeader(t *testing.T, userID string) string {
	t.Helper()
	token, err := issueToken(userID, testSecret)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, code, w.Body.String())
	}
}
