package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the part of the Twilio REST API the notifier needs.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// WhatsAppNotifier sends short alerts to the sales team through Twilio's
// WhatsApp channel.
type WhatsAppNotifier struct {
	api  messageCreator
	from string
	to   string
}

// NewWhatsAppNotifier returns nil when any setting is missing; a nil
// notifier is valid and reports itself as disabled.
func NewWhatsAppNotifier(accountSID, authToken, from, to string) *WhatsAppNotifier {
	if accountSID == "" || authToken == "" || from == "" || to == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &WhatsAppNotifier{api: client.Api, from: WhatsAppAddress(from), to: WhatsAppAddress(to)}
}

func (w *WhatsAppNotifier) Enabled() bool {
	return w != nil && w.api != nil
}

// Send delivers body and returns the Twilio message SID.
func (w *WhatsAppNotifier) Send(body string) (string, error) {
	if !w.Enabled() {
		return "", fmt.Errorf("whatsapp notifications are not configured")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(w.to)
	params.SetFrom(w.from)
	params.SetBody(body)

	msg, err := w.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio: %w", err)
	}
	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	log.Info().Str("messageSid", sid).Msg("Sent WhatsApp alert via Twilio")
	return sid, nil
}
