package model

import "time"

// Service is an offering shown on the services page and managed by admins.
type Service struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	ImagePath   string           `json:"imagePath,omitempty"`
	Icon        string           `json:"icon"`
	Benefits    []ServiceBenefit `json:"benefits"`
	Order       int              `json:"order"`
	Published   bool             `json:"published"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ServiceBenefit is one entry of a service's benefits list, stored as jsonb.
type ServiceBenefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DefaultServiceIcon is assigned when a submission omits the icon field.
const DefaultServiceIcon = "settings"

// ServiceIcons is the icon-name set the admin form offers. The server does
// not reject unknown names; the list is shared with the admin client.
var ServiceIcons = []string{
	"settings", "tool", "zap", "shield", "truck", "database",
	"globe", "trending-up", "layers", "activity", "users",
	"box", "cpu", "server", "power", "sliders", "grid",
}
