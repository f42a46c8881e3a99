package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/statforge/habitquest/game/quiz"
	"github.com/statforge/habitquest/model"
)

// QuizHandler serves the questionnaire to clients.
type QuizHandler struct{}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler() *QuizHandler {
	return &QuizHandler{}
}

// Questions handles GET /api/quiz/:stat?version=short|long.
func (h *QuizHandler) Questions(c *gin.Context) {
	version := quiz.Version(c.DefaultQuery("version", string(quiz.VersionLong)))
	if !version.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz version"})
		return
	}
	qs, err := quiz.Questions(model.Stat(c.Param("stat")), version)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, qs)
}
