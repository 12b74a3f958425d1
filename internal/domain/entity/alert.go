package entity

import "time"

// AlertType severidad de una alerta operativa.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// Alert aviso para el personal (stock bajo, vencimientos). InventoryItemID vacío si no aplica.
type Alert struct {
	ID              string
	Type            AlertType
	Title           string
	Message         string
	InventoryItemID string
	CreatedAt       time.Time
	Acknowledged    bool
}
