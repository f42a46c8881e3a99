package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mw "github.com/statforge/habitquest/middleware"
	"github.com/statforge/habitquest/store"
)

// AvatarHandler handles cosmetic avatar customization state.
type AvatarHandler struct {
	avatars *store.Avatars
}

// NewAvatarHandler creates a new AvatarHandler.
func NewAvatarHandler(avatars *store.Avatars) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

// Get handles GET /api/avatar.
func (h *AvatarHandler) Get(c *gin.Context) {
	accountID := mw.GetAccountID(c)
	data, err := h.avatars.Get(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// Save handles POST /api/avatar. Changes are merged into the stored
// record; race and class are required on every save.
func (h *AvatarHandler) Save(c *gin.Context) {
	var changes map[string]interface{}
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !hasString(changes, "race") || !hasString(changes, "class") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required avatar properties"})
		return
	}

	accountID := mw.GetAccountID(c)
	merged, err := h.avatars.Merge(c.Request.Context(), accountID, changes)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "changes not saved"})
		return
	}
	c.JSON(http.StatusOK, merged)
}

func hasString(m map[string]interface{}, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && s != ""
}
