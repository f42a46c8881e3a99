package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/statforge/habitquest/audit"
	"github.com/statforge/habitquest/cache"
	"github.com/statforge/habitquest/config"
	"github.com/statforge/habitquest/game/quiz"
	mw "github.com/statforge/habitquest/middleware"
	"github.com/statforge/habitquest/model"
	"github.com/statforge/habitquest/store"
	"github.com/statforge/habitquest/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testServer wires the full API surface against an in-memory database and
// in-process cache, mirroring the route table in main.
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cache  cache.Cache
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	ca := testutil.SetupTestCache(t)
	logger := zap.NewNop()

	auditSvc := audit.New(db, logger)
	t.Cleanup(func() { auditSvc.Stop(context.Background()) })

	chars := store.NewCharacters(db, ca, time.Minute, logger)
	avatars := store.NewAvatars(db)

	sec := config.SecurityConfig{JWTSecret: "test-secret", JWTTTLH: time.Hour}
	game := config.GameConfig{DefaultRace: "Human", DefaultClass: "Fighter"}

	authH := NewAuthHandler(db, ca, chars, auditSvc, sec)
	charH := NewCharacterHandler(chars, auditSvc, game)
	taskH := NewTaskHandler(chars, auditSvc)
	avatarH := NewAvatarHandler(avatars)
	quizH := NewQuizHandler()

	r := gin.New()
	r.POST("/api/auth/signup", authH.Signup)
	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/logout", authH.Logout)
	r.GET("/api/quiz/:stat", quizH.Questions)

	authed := r.Group("/api", mw.Auth(sec, ca))
	authed.GET("/character", charH.Get)
	authed.POST("/character", charH.Create)
	authed.GET("/character/stats", charH.Stats)
	authed.POST("/character/habits", taskH.AddHabit)
	authed.POST("/character/habits/:id/toggle", taskH.ToggleHabit)
	authed.POST("/character/dailies", taskH.AddDaily)
	authed.POST("/character/dailies/:id/complete", taskH.CompleteDaily)
	authed.POST("/character/todos", taskH.AddTodo)
	authed.POST("/character/todos/:id/complete", taskH.CompleteTodo)
	authed.GET("/avatar", avatarH.Get)
	authed.POST("/avatar", avatarH.Save)

	return &testServer{router: r, db: db, cache: ca}
}

// do issues a JSON request, optionally authenticated.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// signup registers a fresh account and returns its session token.
func (s *testServer) signup(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    email,
		"username": "tester",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// fullAnswers is a complete valid quiz submission.
func fullAnswers() quiz.AnswerSet {
	ans := quiz.AnswerSet{}
	for _, stat := range model.AllStats {
		ans[stat] = quiz.Answers{Part1: []int{12}, Part2: []int{1, 1}}
	}
	return ans
}

// firstTaskID digs the ID of the first task in the named collection out of
// a task-endpoint response body.
func firstTaskID(t *testing.T, body map[string]interface{}, collection string) string {
	t.Helper()
	ch, _ := body["character"].(map[string]interface{})
	require.NotNil(t, ch, "response has no character")
	list, _ := ch[collection].([]interface{})
	require.NotEmpty(t, list, "character has no %s", collection)
	first, _ := list[0].(map[string]interface{})
	id, _ := first["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// createCharacter runs the onboarding quiz for the authenticated account.
func (s *testServer) createCharacter(t *testing.T, token string) map[string]interface{} {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/character", token, gin.H{
		"name":    "Tester",
		"answers": fullAnswers(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ch, _ := decode(t, w)["character"].(map[string]interface{})
	require.NotNil(t, ch)
	return ch
}
