package dto

// CreateCountryRequest registers a new country
type CreateCountryRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Commission float64 `json:"commission" validate:"gte=0"`
	Flag       string  `json:"flag,omitempty" validate:"max=16"`
}

// CountryDTO is the presentation shape of a country
type CountryDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Commission float64 `json:"commission"`
	Flag       string  `json:"flag,omitempty"`
}

// CreateTemplateRequest registers a bookmaker brand under a country
type CreateTemplateRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=255"`
	CountryID          uint    `json:"country_id" validate:"required"`
	EmployeePercentage float64 `json:"employee_percentage" validate:"gte=0,lte=100"`
}

// TemplateDTO is the presentation shape of a template
type TemplateDTO struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	CountryID          uint    `json:"country_id"`
	EmployeePercentage float64 `json:"employee_percentage"`
}

// CreateBookmakerRequest creates a profile from a template. The profile
// copies the template's brand name and percentage at creation time.
type CreateBookmakerRequest struct {
	TemplateID uint   `json:"template_id" validate:"required"`
	Login      string `json:"login" validate:"required,min=1,max=255"`
}

// UpdateBookmakerRequest applies partial updates to a profile
type UpdateBookmakerRequest struct {
	Login            *string  `json:"login,omitempty" validate:"omitempty,min=1,max=255"`
	SalaryPercentage *float64 `json:"salary_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// CreateWalletRequest registers a wallet. CountryID is nil for
// general-pool wallets.
type CreateWalletRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	Category  string  `json:"category" validate:"required,oneof=general country"`
	CountryID *uint   `json:"country_id,omitempty"`
	Deposit   float64 `json:"deposit"`
}

// AdjustWalletRequest shifts a wallet's adjustment delta
type AdjustWalletRequest struct {
	Delta float64 `json:"delta" validate:"required"`
}

// CreateSourceRequest registers a traffic source
type CreateSourceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// SourceDTO is the presentation shape of a source
type SourceDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
