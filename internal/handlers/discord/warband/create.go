package warband

import (
	"context"
	"fmt"

	"github.com/weirdoworks/warband-bot/internal/entities"
	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// CreateHandler handles /warband create
type CreateHandler struct {
	warbandService warbandService.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(svc warbandService.Service) *CreateHandler {
	return &CreateHandler{warbandService: svc}
}

// Handle creates an empty warband for the invoking user
func (h *CreateHandler) Handle(req *Request) error {
	input := &warbandService.CreateWarbandInput{
		OwnerID:    req.UserID(),
		Name:       req.StringOption("name"),
		Ability:    entities.Ability(req.StringOption("ability")),
		PointLimit: req.IntOption("pointlimit"),
	}

	warband, err := h.warbandService.CreateWarband(context.Background(), input)
	if err != nil {
		return req.respond(fmt.Sprintf("❌ Failed to create warband: %v", err))
	}

	ability := "none"
	if warband.Ability != entities.AbilityNone {
		ability = string(warband.Ability)
	}

	return req.respond(fmt.Sprintf("⚔️ Created warband **%s** (%d points, ability: %s)\nID: `%s`",
		warband.Name, warband.PointLimit, ability, warband.ID))
}
