package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/rpupo63/domp-site-backend/config"
	"github.com/rpupo63/domp-site-backend/models"
)

const notSpecified = "No especificado"

// WhatsAppAddress formats a phone number as a Twilio WhatsApp address.
// Only digits are kept; a 10 digit number is taken as Mexican and gets the
// +52 country code. Numbers already prefixed with whatsapp: are returned
// as is.
func WhatsAppAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}

	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	if len(d) == 10 {
		d = "52" + d
	}
	return "whatsapp:+" + d
}

// GetBaseURL retrieves the public site URL from configuration, checking
// SITE_BASE_URL first and BASE_URL second.
func GetBaseURL(cfg map[string]string) string {
	if baseURL := config.GetString(cfg, "SITE_BASE_URL", ""); baseURL != "" {
		return baseURL
	}
	return config.GetString(cfg, "BASE_URL", "")
}

// BuildAdminQuotesURL returns the admin page listing leads, or "" without a
// base URL.
func BuildAdminQuotesURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/admin/cotizaciones", strings.TrimSuffix(baseURL, "/"))
}

func quoteSubject(q models.QuoteRequest) string {
	return "Nueva cotización DomP - " + q.Nombre
}

func budgetOf(q models.QuoteRequest) string {
	if q.PresupuestoEstimado == nil || *q.PresupuestoEstimado == "" {
		return notSpecified
	}
	return *q.PresupuestoEstimado
}

func quoteText(q models.QuoteRequest, adminURL string) string {
	lines := []string{
		"Nueva solicitud de cotización recibida desde el sitio web de DomP.",
		"",
		"Nombre: " + q.Nombre,
		"Email: " + q.Email,
		"Teléfono: " + q.Telefono,
		"Tipo de proyecto: " + q.TipoProyecto,
		"Presupuesto estimado: " + budgetOf(q),
		"",
		"Mensaje:",
		q.Mensaje,
		"",
	}
	if adminURL != "" {
		lines = append(lines, "Ver en el panel: "+adminURL, "")
	}
	lines = append(lines,
		"-----",
		"Este correo fue generado automáticamente desde el formulario de contacto de DomP.",
	)
	return strings.Join(lines, "\n")
}

// quoteHTML renders the lead for the sales inbox. Every submitted value is
// escaped.
func quoteHTML(q models.QuoteRequest, adminURL string) string {
	e := html.EscapeString
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #101932;">Nueva solicitud de cotización</h2>`)
	b.WriteString(`<p>Has recibido una nueva solicitud de cotización desde el sitio web de DomP.</p>`)
	b.WriteString(`<div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	for _, row := range [][2]string{
		{"Nombre", q.Nombre},
		{"Email", q.Email},
		{"Teléfono", q.Telefono},
		{"Tipo de proyecto", q.TipoProyecto},
		{"Presupuesto estimado", budgetOf(q)},
	} {
		fmt.Fprintf(&b, `<p><strong>%s:</strong> %s</p>`, row[0], e(row[1]))
	}
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div style="margin: 20px 0;"><h3>Mensaje:</h3><p style="white-space: pre-wrap;">%s</p></div>`, e(q.Mensaje))
	if adminURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s">Ver en el panel de administración</a></p>`, e(adminURL))
	}
	b.WriteString(`<hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">`)
	b.WriteString(`<p style="color: #666; font-size: 12px;">Este correo fue generado automáticamente desde el formulario de contacto de DomP.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func quoteWhatsApp(q models.QuoteRequest) string {
	return fmt.Sprintf("Nueva cotización DomP\n%s (%s)\nTel: %s\nProyecto: %s\nPresupuesto: %s",
		q.Nombre, q.Email, q.Telefono, q.TipoProyecto, budgetOf(q))
}
