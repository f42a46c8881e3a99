package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/statforge/habitquest/audit"
	"github.com/statforge/habitquest/game/task"
	mw "github.com/statforge/habitquest/middleware"
	"github.com/statforge/habitquest/model"
	"github.com/statforge/habitquest/store"
)

// TaskHandler handles task creation and completion endpoints. Completion
// routes apply one engine transform and persist the result; engine no-op
// sentinels come back as 200 with the unchanged character so the client
// simply re-renders current state.
type TaskHandler struct {
	chars *store.Characters
	audit *audit.Service
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(chars *store.Characters, auditSvc *audit.Service) *TaskHandler {
	return &TaskHandler{chars: chars, audit: auditSvc}
}

type addTaskRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=64"`
	Description    string           `json:"description" binding:"max=512"`
	Difficulty     model.Difficulty `json:"difficulty" binding:"required"`
	AssociatedStat model.Stat       `json:"associatedStat" binding:"required"`

	// Habit only.
	Positive *bool `json:"positive,omitempty"`
	Negative *bool `json:"negative,omitempty"`

	// Daily only.
	Schedule *model.WeekSchedule `json:"schedule,omitempty"`

	// Todo only.
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Checklist []string   `json:"checklist,omitempty"`
}

func (r addTaskRequest) base(kind model.TaskKind) (model.TaskBase, bool) {
	if !r.Difficulty.Valid() {
		return model.TaskBase{}, false
	}
	if r.AssociatedStat.Valid() {
		return model.TaskBase{
			ID:             uuid.New().String(),
			Kind:           kind,
			Name:           r.Name,
			Description:    r.Description,
			Difficulty:     r.Difficulty,
			AssociatedStat: r.AssociatedStat,
		}, true
	}
	return model.TaskBase{}, false
}

// withCharacter loads the character, runs fn, and persists the result.
func (h *TaskHandler) withCharacter(c *gin.Context, fn func(ch model.Character) (model.Character, error)) {
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

	next, opErr := fn(*ch)
	if opErr != nil && !isNoop(opErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": opErr.Error()})
		return
	}

	if opErr == nil {
		if err := h.chars.Set(c.Request.Context(), accountID, next); err != nil {
			// The computed state stays intact client-side; the store write is
			// the only thing that failed.
			c.JSON(http.StatusBadGateway, gin.H{"error": "changes not saved"})
			return
		}
		if next.Level > ch.Level {
			h.audit.Log(audit.Entry{
				TraceID:   mw.GetTraceID(c),
				AccountID: &accountID,
				Action:    "level_up",
				Detail:    gin.H{"from": ch.Level, "to": next.Level},
				IP:        c.ClientIP(),
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"character":       next,
		"effective_stats": task.EffectiveStats(next),
		"applied":         opErr == nil,
	})
}

func isNoop(err error) bool {
	return errors.Is(err, task.ErrTaskNotFound) ||
		errors.Is(err, task.ErrAlreadyCompleted) ||
		errors.Is(err, task.ErrNotScheduled) ||
		errors.Is(err, task.ErrDirectionNotAllowed)
}

// AddHabit handles POST /api/character/habits.
func (h *TaskHandler) AddHabit(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	base, ok := req.base(model.KindHabit)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty or stat"})
		return
	}
	habit := model.Habit{TaskBase: base, Positive: true}
	if req.Positive != nil {
		habit.Positive = *req.Positive
	}
	if req.Negative != nil {
		habit.Negative = *req.Negative
	}
	if !habit.Positive && !habit.Negative {
		c.JSON(http.StatusBadRequest, gin.H{"error": "habit needs at least one direction"})
		return
	}
	h.withCharacter(c, func(ch model.Character) (model.Character, error) {
		out := ch.Clone()
		out.Habits = append(out.Habits, habit)
		return out, nil
	})
}

// AddDaily handles POST /api/character/dailies.
func (h *TaskHandler) AddDaily(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	base, ok := req.base(model.KindDaily)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty or stat"})
		return
	}
	daily := model.Daily{TaskBase: base, Schedule: model.EveryDay}
	if req.Schedule != nil {
		daily.Schedule = *req.Schedule
	}
	h.withCharacter(c, func(ch model.Character) (model.Character, error) {
		out := ch.Clone()
		out.Dailies = append(out.Dailies, daily)
		return out, nil
	})
}

// AddTodo handles POST /api/character/todos.
func (h *TaskHandler) AddTodo(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	base, ok := req.base(model.KindTodo)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty or stat"})
		return
	}
	todo := model.Todo{TaskBase: base, DueDate: req.DueDate}
	for _, item := range req.Checklist {
		todo.Checklist = append(todo.Checklist, model.ChecklistItem{Text: item})
	}
	h.withCharacter(c, func(ch model.Character) (model.Character, error) {
		out := ch.Clone()
		out.Todos = append(out.Todos, todo)
		return out, nil
	})
}

type toggleHabitRequest struct {
	Direction task.Direction `json:"direction" binding:"required"`
}

// ToggleHabit handles POST /api/character/habits/:id/toggle.
func (h *TaskHandler) ToggleHabit(c *gin.Context) {
	var req toggleHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	h.withCharacter(c, func(ch model.Character) (model.Character, error) {
		return task.ToggleHabit(ch, id, req.Direction, time.Now())
	})
}

// CompleteDaily handles POST /api/character/dailies/:id/complete.
func (h *TaskHandler) CompleteDaily(c *gin.Context) {
	id := c.Param("id")
	h.withCharacter(c, func(ch model.Character) (model.Character, error) {
		return task.CompleteDaily(ch, id, time.Now())
	})
}

// CompleteTodo handles POST /api/character/todos/:id/complete.
func (h *TaskHandler) CompleteTodo(c *gin.Context) {
	id := c.Param("id")
	h.withCharacter(c, func(ch model.Character) (model.Character, error) {
		return task.CompleteTodo(ch, id, time.Now())
	})
}
