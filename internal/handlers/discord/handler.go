package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/gamedata"
	warbandHandler "github.com/weirdoworks/warband-bot/internal/handlers/discord/warband"
	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

// Handler handles all Discord interactions
type Handler struct {
	warbandCreateHandler    *warbandHandler.CreateHandler
	warbandListHandler      *warbandHandler.ListHandler
	warbandShowHandler      *warbandHandler.ShowHandler
	warbandValidateHandler  *warbandHandler.ValidateHandler
	warbandDeleteHandler    *warbandHandler.DeleteHandler
	warbandAddWeirdoHandler *warbandHandler.AddWeirdoHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	WarbandService warbandService.Service
	Catalog        *gamedata.Catalog
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.WarbandService == nil {
		panic("warband service is required")
	}

	return &Handler{
		warbandCreateHandler:    warbandHandler.NewCreateHandler(cfg.WarbandService),
		warbandListHandler:      warbandHandler.NewListHandler(cfg.WarbandService),
		warbandShowHandler:      warbandHandler.NewShowHandler(cfg.WarbandService),
		warbandValidateHandler:  warbandHandler.NewValidateHandler(cfg.WarbandService),
		warbandDeleteHandler:    warbandHandler.NewDeleteHandler(cfg.WarbandService),
		warbandAddWeirdoHandler: warbandHandler.NewAddWeirdoHandler(cfg.WarbandService, cfg.Catalog),
	}
}

// RegisterCommands registers the /warband slash command tree
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	abilityChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.Abilities))
	for _, ability := range entities.Abilities {
		abilityChoices = append(abilityChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(ability),
			Value: string(ability),
		})
	}

	command := &discordgo.ApplicationCommand{
		Name:        "warband",
		Description: "Build and validate warbands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Create a new warband",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Warband name",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "pointlimit",
						Description: "Point limit",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "75", Value: entities.PointLimitSkirmish},
							{Name: "125", Value: entities.PointLimitBattle},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "ability",
						Description: "Warband ability",
						Choices:     abilityChoices,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List your warbands",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Show a warband's cost breakdown",
				Options:     []*discordgo.ApplicationCommandOption{warbandIDOption()},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "validate",
				Description: "Validate a warband against the roster rules",
				Options:     []*discordgo.ApplicationCommandOption{warbandIDOption()},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete a warband",
				Options:     []*discordgo.ApplicationCommandOption{warbandIDOption()},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "addweirdo",
				Description: "Add a weirdo with baseline attributes",
				Options: []*discordgo.ApplicationCommandOption{
					warbandIDOption(),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Weirdo name",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "type",
						Description: "Unit type",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "leader", Value: string(entities.WeirdoTypeLeader)},
							{Name: "trooper", Value: string(entities.WeirdoTypeTrooper)},
						},
					},
				},
			},
		},
	}

	if _, err := s.ApplicationCommandCreate(appID, guildID, command); err != nil {
		return fmt.Errorf("failed to register warband command: %w", err)
	}

	return nil
}

func warbandIDOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "Warband ID",
		Required:    true,
	}
}

// HandleInteraction routes an interaction to the matching subcommand handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "warband" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "create":
		err = h.warbandCreateHandler.Handle(&warbandHandler.Request{Session: s, Interaction: i, Options: sub.Options})
	case "list":
		err = h.warbandListHandler.Handle(&warbandHandler.Request{Session: s, Interaction: i, Options: sub.Options})
	case "show":
		err = h.warbandShowHandler.Handle(&warbandHandler.Request{Session: s, Interaction: i, Options: sub.Options})
	case "validate":
		err = h.warbandValidateHandler.Handle(&warbandHandler.Request{Session: s, Interaction: i, Options: sub.Options})
	case "delete":
		err = h.warbandDeleteHandler.Handle(&warbandHandler.Request{Session: s, Interaction: i, Options: sub.Options})
	case "addweirdo":
		err = h.warbandAddWeirdoHandler.Handle(&warbandHandler.Request{Session: s, Interaction: i, Options: sub.Options})
	default:
		log.Printf("Unknown warband subcommand: %s", sub.Name)
		return
	}

	if err != nil {
		log.Printf("Error handling /warband %s: %v", sub.Name, err)
	}
}
