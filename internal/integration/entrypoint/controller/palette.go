package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/integration/entrypoint/dto"
)

// PaletteController serves the fixed tracker styling palettes.
type PaletteController struct{}

// NewPaletteController creates a new palette controller instance.
func NewPaletteController() *PaletteController {
	return &PaletteController{}
}

// Get handles GET /palette requests.
func (c *PaletteController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PaletteResponse{
		Emojis: entity.TrackerEmojis,
		Colors: entity.TrackerColors,
	})
}
