package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/telemetry"
)

// TemplateSendRequest asks for a catalog template to be rendered and sent.
// When ClientID is set the placeholders come from that record; Name, Amount
// and Tenure override individual values.
type TemplateSendRequest struct {
	TemplateID string   `json:"templateId"`
	To         string   `json:"to"`
	ClientID   string   `json:"clientId,omitempty"`
	Name       string   `json:"name,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Tenure     string   `json:"tenure,omitempty"`
}

// EmailService validates and dispatches outgoing mail.
type EmailService struct {
	mailer  Mailer
	clients *ClientService
	loc     *time.Location
}

func NewEmailService(mailer Mailer, clients *ClientService, loc *time.Location) *EmailService {
	if loc == nil {
		loc = time.UTC
	}
	return &EmailService{mailer: mailer, clients: clients, loc: loc}
}

// Templates lists the service packages followed by the general templates.
func (s *EmailService) Templates() []models.ServicePackage {
	out := make([]models.ServicePackage, 0, len(models.ServicePackages)+len(models.GeneralTemplates))
	out = append(out, models.ServicePackages...)
	return append(out, models.GeneralTemplates...)
}

// Send relays msg. All three fields must be non-blank. Nothing is retried.
func (s *EmailService) Send(ctx context.Context, msg Message) error {
	msg.To = strings.TrimSpace(msg.To)
	if msg.To == "" || strings.TrimSpace(msg.Subject) == "" || strings.TrimSpace(msg.HTML) == "" {
		return ErrIncompleteMessage
	}

	err := s.mailer.Send(ctx, msg)
	log := logger.Component("email")

	var cfgErr *ConfigurationError
	switch {
	case err == nil:
		telemetry.RecordEmail("sent")
		log.Info().Str("to", logger.MaskEmail(msg.To)).Msg("email sent")
	case errors.As(err, &cfgErr):
		telemetry.RecordEmail("unconfigured")
		log.Warn().Strs("missing", cfgErr.Missing).Msg("email not sent, SMTP not configured")
	default:
		telemetry.RecordEmail("failed")
		log.Error().Err(err).Str("to", logger.MaskEmail(msg.To)).Msg("email send failed")
	}
	return err
}

// SendTemplate renders a catalog template and sends it. The rendered message
// is returned even when delivery fails.
func (s *EmailService) SendTemplate(ctx context.Context, req TemplateSendRequest) (Message, error) {
	tpl, ok := models.FindTemplate(req.TemplateID)
	if !ok {
		return Message{}, ErrUnknownTemplate
	}

	var vars TemplateVars
	if req.ClientID != "" {
		rec, err := s.clients.Get(ctx, req.ClientID)
		if err != nil {
			return Message{}, err
		}
		vars = VarsFromRecord(rec, s.loc)
		if req.To == "" {
			req.To = rec.Email
		}
	}
	if req.Name != "" {
		vars.Name = req.Name
	}
	if req.Amount != nil {
		vars.Amount = FormatAmount(*req.Amount)
	}
	if req.Tenure != "" {
		vars.Tenure = req.Tenure
	}

	msg := Message{
		To:      req.To,
		Subject: Render(tpl.Subject, vars),
		HTML:    Render(tpl.Body, vars),
	}
	return msg, s.Send(ctx, msg)
}
