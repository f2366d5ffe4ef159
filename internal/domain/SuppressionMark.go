package domain

import "time"

// SuppressionMark marca um par (cliente, plataforma) como "ignorar aviso de
// ajuste". A marca vale somente para a data de calendário em que foi criada;
// em qualquer dia posterior é tratada como ausente, sem varredura de expiração.
type SuppressionMark struct {
	ClientID  string    `json:"client_id"`
	Platform  Platform  `json:"platform"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
