package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/weirdoworks/warband-bot/internal/entities"
	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// ShowHandler handles /warband show
type ShowHandler struct {
	warbandService warbandService.Service
}

// NewShowHandler creates a new show handler
func NewShowHandler(svc warbandService.Service) *ShowHandler {
	return &ShowHandler{warbandService: svc}
}

// Handle renders a warband's cost breakdown
func (h *ShowHandler) Handle(req *Request) error {
	warband, err := h.warbandService.GetWarband(context.Background(), req.StringOption("id"))
	if err != nil {
		return req.respond(fmt.Sprintf("❌ Failed to get warband: %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚔️ %s — %d/%d pts", warband.Name, warband.TotalCost, warband.PointLimit),
		Color: 0x2ecc71,
	}
	if warband.TotalCost > warband.PointLimit {
		embed.Color = 0xe74c3c
	}
	if warband.Ability != entities.AbilityNone {
		embed.Description = fmt.Sprintf("Ability: **%s**", warband.Ability)
	}

	for _, weirdo := range warband.Weirdos {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%s) — %d pts", weirdo.Name, weirdo.Type, weirdo.TotalCost),
			Value:  weirdoSummary(weirdo),
			Inline: false,
		})
	}
	if len(warband.Weirdos) == 0 {
		embed.Description = "No weirdos yet. Use `/warband addweirdo` to add one."
	}

	return req.respondEmbed(embed)
}

func weirdoSummary(weirdo *entities.Weirdo) string {
	var parts []string

	if attrs := weirdo.Attributes; attrs != nil && attrs.Speed != nil {
		parts = append(parts, fmt.Sprintf("SPD %d | DEF %s | PRW %s | WIL %s | FP %s",
			*attrs.Speed, attrs.Defense, attrs.Prowess, attrs.Willpower, attrs.Firepower))
	}

	var items []string
	for _, w := range weirdo.CloseCombatWeapons {
		items = append(items, w.Name)
	}
	for _, w := range weirdo.RangedWeapons {
		items = append(items, w.Name)
	}
	for _, e := range weirdo.Equipment {
		items = append(items, e.Name)
	}
	for _, p := range weirdo.PsychicPowers {
		items = append(items, p.Name)
	}
	if len(items) > 0 {
		parts = append(parts, strings.Join(items, ", "))
	}

	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, "\n")
}
