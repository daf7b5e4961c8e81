package warband

import (
	"context"
	"fmt"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/gamedata"
	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// AddWeirdoHandler handles /warband addweirdo
type AddWeirdoHandler struct {
	warbandService warbandService.Service
	catalog        *gamedata.Catalog
}

// NewAddWeirdoHandler creates a new addweirdo handler
func NewAddWeirdoHandler(svc warbandService.Service, catalog *gamedata.Catalog) *AddWeirdoHandler {
	return &AddWeirdoHandler{warbandService: svc, catalog: catalog}
}

// Handle adds a baseline weirdo: minimum attributes and an unarmed close
// combat weapon. Attribute and gear tweaks come afterwards through edits.
func (h *AddWeirdoHandler) Handle(req *Request) error {
	unarmed, err := h.catalog.Weapon("unarmed")
	if err != nil {
		return req.respond(fmt.Sprintf("❌ Catalog lookup failed: %v", err))
	}

	weirdo := &entities.Weirdo{
		Name:               req.StringOption("name"),
		Type:               entities.WeirdoType(req.StringOption("type")),
		Attributes:         entities.NewAttributes(entities.SpeedMin, entities.DiceTier2D6, entities.DiceTier2D6, entities.DiceTier2D6, entities.FirepowerNone),
		CloseCombatWeapons: []entities.Weapon{unarmed},
	}

	warband, err := h.warbandService.AddWeirdo(context.Background(), req.StringOption("id"), weirdo)
	if err != nil {
		return req.respond(fmt.Sprintf("❌ Failed to add weirdo: %v", err))
	}

	return req.respond(fmt.Sprintf("🧟 Added **%s** (%s) to **%s**, warband now %d/%d pts",
		weirdo.Name, weirdo.Type, warband.Name, warband.TotalCost, warband.PointLimit))
}
