package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// ValidateHandler handles /warband validate
type ValidateHandler struct {
	warbandService warbandService.Service
}

// NewValidateHandler creates a new validate handler
func NewValidateHandler(svc warbandService.Service) *ValidateHandler {
	return &ValidateHandler{warbandService: svc}
}

// Handle runs the full rule check and renders errors and warnings
func (h *ValidateHandler) Handle(req *Request) error {
	result, err := h.warbandService.ValidateWarband(context.Background(), req.StringOption("id"))
	if err != nil {
		return req.respond(fmt.Sprintf("❌ Failed to validate warband: %v", err))
	}

	embed := &discordgo.MessageEmbed{Title: "✅ Warband is legal", Color: 0x2ecc71}
	if !result.Valid {
		embed.Title = fmt.Sprintf("❌ %d problem(s) found", len(result.Errors))
		embed.Color = 0xe74c3c
	}

	if len(result.Errors) > 0 {
		var sb strings.Builder
		for _, finding := range result.Errors {
			sb.WriteString(fmt.Sprintf("• **%s** — %s\n", finding.Field, finding.Message))
			for _, suggestion := range finding.Suggestions {
				sb.WriteString(fmt.Sprintf("  ↳ %s\n", suggestion))
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Errors",
			Value: sb.String(),
		})
	}

	if len(result.Warnings) > 0 {
		var sb strings.Builder
		for _, finding := range result.Warnings {
			sb.WriteString(fmt.Sprintf("• %s\n", finding.Message))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚠️ Warnings",
			Value: sb.String(),
		})
	}

	return req.respondEmbed(embed)
}
