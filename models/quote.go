package models

import "time"

type QuoteStatus string

const (
	QuoteStatusNuevo      QuoteStatus = "nuevo"
	QuoteStatusContactado QuoteStatus = "contactado"
	QuoteStatusCotizado   QuoteStatus = "cotizado"
	QuoteStatusCerrado    QuoteStatus = "cerrado"
)

// QuoteStatuses lists the allowed statuses in workflow order.
var QuoteStatuses = []QuoteStatus{QuoteStatusNuevo, QuoteStatusContactado, QuoteStatusCotizado, QuoteStatusCerrado}

func (s QuoteStatus) Valid() bool {
	for _, allowed := range QuoteStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// QuoteOriginWeb marks leads captured by the public contact form.
const QuoteOriginWeb = "web"

// QuotePayload is what the public contact form submits
type QuotePayload struct {
	Nombre              string `json:"nombre"`
	Email               string `json:"email"`
	Telefono            string `json:"telefono"`
	TipoProyecto        string `json:"tipoProyecto"`
	Mensaje             string `json:"mensaje"`
	PresupuestoEstimado string `json:"presupuestoEstimado,omitempty"`
}

// QuoteRequest is a stored lead. Only Status changes after creation.
type QuoteRequest struct {
	ID                  string      `json:"id"`
	Nombre              string      `json:"nombre"`
	Email               string      `json:"email"`
	Telefono            string      `json:"telefono"`
	TipoProyecto        string      `json:"tipoProyecto"`
	Mensaje             string      `json:"mensaje"`
	PresupuestoEstimado *string     `json:"presupuestoEstimado"`
	Status              QuoteStatus `json:"status"`
	Origen              string      `json:"origen"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// QuoteReceipt tells the submitter which delivery channels succeeded.
type QuoteReceipt struct {
	ID           string   `json:"id,omitempty"`
	Stored       bool     `json:"stored"`
	EmailSent    bool     `json:"emailSent"`
	WhatsAppSent bool     `json:"whatsappSent"`
	Warnings     []string `json:"warnings,omitempty"`
}
