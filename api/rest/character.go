package rest

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/statforge/habitquest/audit"
	"github.com/statforge/habitquest/config"
	"github.com/statforge/habitquest/game/quiz"
	"github.com/statforge/habitquest/game/task"
	mw "github.com/statforge/habitquest/middleware"
	"github.com/statforge/habitquest/model"
	"github.com/statforge/habitquest/store"
)

// CharacterHandler handles character creation and reads.
type CharacterHandler struct {
	chars *store.Characters
	audit *audit.Service
	game  config.GameConfig
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(chars *store.Characters, auditSvc *audit.Service, game config.GameConfig) *CharacterHandler {
	return &CharacterHandler{chars: chars, audit: auditSvc, game: game}
}

// Get handles GET /api/character. Dailies are lazily rolled over so a
// client that connects after midnight sees current completion state even
// before the scheduler's next pass.
func (h *CharacterHandler) Get(c *gin.Context) {
	accountID := mw.GetAccountID(c)
	ch, err := h.chars.Get(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if ch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not created"})
		return
	}

	rolled := task.ResetDailyPeriod(*ch, time.Now())
	if !reflect.DeepEqual(rolled.Dailies, ch.Dailies) {
		// Best-effort: a failed save just means the next read rolls again.
		_ = h.chars.Set(c.Request.Context(), accountID, rolled)
	}

	c.JSON(http.StatusOK, gin.H{
		"character":       rolled,
		"effective_stats": task.EffectiveStats(rolled),
	})
}

// Stats handles GET /api/character/stats: the derived-buff view.
func (h *CharacterHandler) Stats(c *gin.Context) {
	accountID := mw.GetAccountID(c)
	ch, err := h.chars.Get(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if ch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"base":      ch.Stats,
		"buffs":     task.StatBuffs(*ch),
		"effective": task.EffectiveStats(*ch),
	})
}

type createCharacterRequest struct {
	Name    string         `json:"name" binding:"required,min=1,max=32"`
	Race    string         `json:"race"`
	Class   string         `json:"class"`
	Version quiz.Version   `json:"version"`
	Answers quiz.AnswerSet `json:"answers" binding:"required"`
}

// Create handles POST /api/character: onboarding-quiz submission. Stats
// are fixed at creation from the quiz result; re-creating overwrites.
func (h *CharacterHandler) Create(c *gin.Context) {
	accountID := mw.GetAccountID(c)

	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	version := req.Version
	if version == "" {
		version = quiz.VersionLong
	}
	if !version.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz version"})
		return
	}

	stats, err := quiz.ScoreAll(req.Answers, version)
	if err != nil {
		// Missing question sets are configuration bugs and deserve a loud
		// 500; malformed answers are the client's fault.
		status := http.StatusInternalServerError
		if errors.Is(err, quiz.ErrAnswerCount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	race := req.Race
	if race == "" {
		race = h.game.DefaultRace
	}
	class := req.Class
	if class == "" {
		class = h.game.DefaultClass
	}

	ch := model.NewCharacter(uuid.New().String(), req.Name, race, class, stats)
	if err := h.chars.Set(c.Request.Context(), accountID, ch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "changes not saved"})
		return
	}

	h.audit.Log(audit.Entry{
		TraceID:   mw.GetTraceID(c),
		AccountID: &accountID,
		Action:    "character_create",
		Detail:    stats,
		IP:        c.ClientIP(),
	})

	c.JSON(http.StatusCreated, gin.H{"character": ch})
}
