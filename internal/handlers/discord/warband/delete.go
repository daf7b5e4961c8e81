package warband

import (
	"context"
	"fmt"

	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// DeleteHandler handles /warband delete
type DeleteHandler struct {
	warbandService warbandService.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(svc warbandService.Service) *DeleteHandler {
	return &DeleteHandler{warbandService: svc}
}

// Handle removes a warband
func (h *DeleteHandler) Handle(req *Request) error {
	id := req.StringOption("id")

	if err := h.warbandService.DeleteWarband(context.Background(), id); err != nil {
		return req.respond(fmt.Sprintf("❌ Failed to delete warband: %v", err))
	}

	return req.respond(fmt.Sprintf("🗑️ Deleted warband `%s`", id))
}
