package warband

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Request carries everything a subcommand handler needs for one interaction.
type Request struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Options     []*discordgo.ApplicationCommandInteractionDataOption
}

// UserID returns the invoking user's ID for both guild and DM interactions.
func (r *Request) UserID() string {
	if r.Interaction.Member != nil && r.Interaction.Member.User != nil {
		return r.Interaction.Member.User.ID
	}
	if r.Interaction.User != nil {
		return r.Interaction.User.ID
	}
	return ""
}

// StringOption returns a named string option, or "" when absent.
func (r *Request) StringOption(name string) string {
	for _, opt := range r.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// IntOption returns a named integer option, or 0 when absent.
func (r *Request) IntOption(name string) int {
	for _, opt := range r.Options {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return 0
}

// respond sends an ephemeral text response.
func (r *Request) respond(content string) error {
	err := r.Session.InteractionRespond(r.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to respond to interaction: %w", err)
	}
	return nil
}

// respondEmbed sends an ephemeral embed response.
func (r *Request) respondEmbed(embed *discordgo.MessageEmbed) error {
	err := r.Session.InteractionRespond(r.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to respond to interaction: %w", err)
	}
	return nil
}
