package notifier

import (
	"fmt"

	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier pings the shop owner's channel about new orders.
type DiscordNotifier struct {
	discord   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	discord, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordNotifier{
		discord:   discord,
		channelID: channelID,
	}, nil
}

// NotifyNewOrder posts a one-line order summary to the owner channel.
func (n *DiscordNotifier) NotifyNewOrder(order store.OrderRecord) error {
	delivery := "⚠️ livraison à organiser manuellement"
	if order.TrackingCode != "" {
		delivery = "suivi " + order.TrackingCode
	}

	message := fmt.Sprintf("🎾 Nouvelle commande %s | %s | %s | %d article(s) | %s | %s",
		order.Code,
		util.TruncateContent(order.Customer.FullName, 40),
		util.FormatMAD(order.Amount),
		len(order.Items),
		util.TruncateContent(order.Shipping.Address, 60),
		delivery,
	)

	_, err := n.discord.ChannelMessageSend(n.channelID, message)
	return err
}
