package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type quoteStore interface {
	Add(ctx context.Context, q models.QuoteRequest) error
}

type emailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

type alertSender interface {
	Enabled() bool
	Send(body string) (string, error)
}

// QuoteIntake accepts leads from the public contact form. A lead is stored
// and emailed to the sales inbox at the same time; it is accepted when at
// least one of the two succeeds. The WhatsApp alert is best effort and
// never decides the outcome.
type QuoteIntake struct {
	store      quoteStore
	mailer     emailSender
	whatsapp   alertSender
	recipients []string
	adminURL   string

	now   func() time.Time
	newID func() string
}

type IntakeConfig struct {
	// Recipients of the lead email. Defaults to the sales inbox.
	Recipients []string
	// AdminURL, when set, is linked from the email.
	AdminURL string
}

const defaultQuotesInbox = "constructora.domp@outlook.com"

func NewQuoteIntake(store quoteStore, mailer emailSender, whatsapp alertSender, cfg IntakeConfig) *QuoteIntake {
	recipients := cfg.Recipients
	if len(recipients) == 0 {
		recipients = []string{defaultQuotesInbox}
	}
	return &QuoteIntake{
		store:      store,
		mailer:     mailer,
		whatsapp:   whatsapp,
		recipients: recipients,
		adminURL:   cfg.AdminURL,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Submit validates p and delivers it. Nothing is stored or sent when
// validation fails. Delivery outlives ctx: a visitor closing the tab must not
// lose the lead. The store and mailer apply their own timeouts.
func (s *QuoteIntake) Submit(ctx context.Context, p models.QuotePayload) (models.QuoteReceipt, error) {
	q, err := s.newRequest(p)
	if err != nil {
		return models.QuoteReceipt{}, err
	}
	ctx = context.WithoutCancel(ctx)

	var (
		g                      errgroup.Group
		storeErr, emailErr     error
		stored, mailed, pinged bool
	)

	g.Go(func() error {
		if storeErr = s.store.Add(ctx, q); storeErr != nil {
			log.Error().Err(storeErr).Str("quoteId", q.ID).Msg("Failed to store quote request")
			return nil
		}
		stored = true
		return nil
	})

	g.Go(func() error {
		_, emailErr = s.mailer.Send(ctx, Email{
			To:      s.recipients,
			Subject: quoteSubject(q),
			Text:    quoteText(q, s.adminURL),
			Html:    quoteHTML(q, s.adminURL),
			ReplyTo: q.Email,
		})
		if emailErr != nil {
			log.Error().Err(emailErr).Str("quoteId", q.ID).Msg("Failed to email quote request")
			return nil
		}
		mailed = true
		return nil
	})

	if s.whatsapp != nil && s.whatsapp.Enabled() {
		g.Go(func() error {
			if _, err := s.whatsapp.Send(quoteWhatsApp(q)); err != nil {
				log.Warn().Err(err).Str("quoteId", q.ID).Msg("Failed to send WhatsApp alert")
				return nil
			}
			pinged = true
			return nil
		})
	}

	_ = g.Wait()

	if !stored && !mailed {
		return models.QuoteReceipt{}, errs.NewDeliveryFailedError([]string{
			"Correo: " + reason(emailErr) + ".",
			"Base de datos: " + reason(storeErr) + ".",
		})
	}

	receipt := models.QuoteReceipt{Stored: stored, EmailSent: mailed, WhatsAppSent: pinged}
	if stored {
		receipt.ID = q.ID
	} else {
		receipt.Warnings = append(receipt.Warnings, "La cotización no se guardó en la base de datos: "+reason(storeErr))
	}
	if !mailed {
		receipt.Warnings = append(receipt.Warnings, "No se pudo enviar el correo de aviso: "+reason(emailErr))
	}
	log.Info().Str("quoteId", q.ID).Bool("stored", stored).Bool("emailSent", mailed).Bool("whatsappSent", pinged).Msg("Quote request received")
	return receipt, nil
}

func (s *QuoteIntake) newRequest(p models.QuotePayload) (models.QuoteRequest, error) {
	q := models.QuoteRequest{
		Nombre:       strings.TrimSpace(p.Nombre),
		Email:        strings.TrimSpace(p.Email),
		Telefono:     strings.TrimSpace(p.Telefono),
		TipoProyecto: strings.TrimSpace(p.TipoProyecto),
		Mensaje:      strings.TrimSpace(p.Mensaje),
		Status:       models.QuoteStatusNuevo,
		Origen:       models.QuoteOriginWeb,
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"nombre", q.Nombre},
		{"email", q.Email},
		{"telefono", q.Telefono},
		{"tipoProyecto", q.TipoProyecto},
		{"mensaje", q.Mensaje},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.QuoteRequest{}, errs.NewMissingRequiredFieldError(strings.Join(missing, ", "))
	}

	if budget := strings.TrimSpace(p.PresupuestoEstimado); budget != "" {
		q.PresupuestoEstimado = &budget
	}
	q.ID = s.newID()
	q.CreatedAt = s.now().UTC()
	return q, nil
}

func reason(err error) string {
	if err == nil {
		return "error desconocido"
	}
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
