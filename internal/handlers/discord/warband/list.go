package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// ListHandler handles /warband list
type ListHandler struct {
	warbandService warbandService.Service
}

// NewListHandler creates a new list handler
func NewListHandler(svc warbandService.Service) *ListHandler {
	return &ListHandler{warbandService: svc}
}

// Handle lists the invoking user's warbands
func (h *ListHandler) Handle(req *Request) error {
	warbandList, err := h.warbandService.ListWarbands(context.Background(), req.UserID())
	if err != nil {
		return req.respond(fmt.Sprintf("❌ Failed to list warbands: %v", err))
	}

	if len(warbandList) == 0 {
		return req.respond("📝 You don't have any warbands yet. Use `/warband create` to start one!")
	}

	var sb strings.Builder
	for _, warband := range warbandList {
		sb.WriteString(fmt.Sprintf("**%s** — %d/%d pts, %d weirdo(s)\n  ID: `%s`\n",
			warband.Name, warband.TotalCost, warband.PointLimit, len(warband.Weirdos), warband.ID))
	}

	return req.respondEmbed(&discordgo.MessageEmbed{
		Title:       "📚 Your Warbands",
		Description: sb.String(),
		Color:       0x3498db,
	})
}
