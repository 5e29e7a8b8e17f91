package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587

	senderEmailName    = "We Love Padel"
	senderEmailAddress = "welovepadelshop@gmail.com"
)

type GmailSender struct {
	client *mail.Client
	config util.Config
}

func NewGmailSender(username, password string, config util.Config) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client: client,
		config: config,
	}, nil
}

// SendOrderConfirmation emails the customer a summary of their confirmed order.
func (sender *GmailSender) SendOrderConfirmation(ctx context.Context, order store.OrderRecord) error {
	msg := mail.NewMsg()

	err := msg.FromFormat(senderEmailName, senderEmailAddress)
	if err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}

	if err = msg.To(order.Customer.Email); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Confirmation de commande %s", order.Code))
	msg.SetBodyString(mail.TypeTextHTML, buildConfirmationBody(order))

	if err = sender.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

func buildConfirmationBody(order store.OrderRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<h2>Merci pour votre commande, %s !</h2>", order.Customer.FullName))
	sb.WriteString(fmt.Sprintf("<p>Commande <strong>%s</strong></p>", order.Code))

	sb.WriteString("<ul>")
	for _, item := range order.Items {
		line := fmt.Sprintf("%dx %s", item.Quantity, item.ProductName)
		if item.Size != "" {
			line += fmt.Sprintf(" (taille %s)", item.Size)
		}
		sb.WriteString("<li>" + line + "</li>")
	}
	sb.WriteString("</ul>")

	sb.WriteString(fmt.Sprintf("<p>Total : <strong>%s</strong></p>", util.FormatMAD(order.Amount)))

	if order.TrackingCode != "" {
		sb.WriteString(fmt.Sprintf("<p>Suivi de livraison : <strong>%s</strong></p>", order.TrackingCode))
	} else {
		sb.WriteString("<p>Votre livraison sera organisée très prochainement.</p>")
	}

	return sb.String()
}
