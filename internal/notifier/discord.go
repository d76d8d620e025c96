package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/vila-verde/booking-api/internal/models"
)

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
	baseURL   string
}

func NewDiscordNotifier(session *discordgo.Session, channelID, baseURL string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
		baseURL:   baseURL,
	}
}

func (n *DiscordNotifier) NotifyBooking(booking models.Booking) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, FormatBookingMessage(booking, n.baseURL))
	if err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}
