package models

// ShopSettings is the shop identity used on printed documents, plus
// the theme accent color applied to them.
type ShopSettings struct {
	Name         string  `json:"name"`
	ICE          string  `json:"ice"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	TVA          float64 `json:"tva"`
	PrimaryColor string  `json:"primary_color"`
	LogoURL      string  `json:"logo_url,omitempty"`
}

type UpdateSettingsRequest struct {
	Name         *string  `json:"name"`
	ICE          *string  `json:"ice"`
	Address      *string  `json:"address"`
	Phone        *string  `json:"phone"`
	TVA          *float64 `json:"tva"`
	PrimaryColor *string  `json:"primary_color"`
	LogoURL      *string  `json:"logo_url"`
}
