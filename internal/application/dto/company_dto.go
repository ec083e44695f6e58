package dto

import "time"

// CompanyResponse empresa del portafolio en respuestas HTTP.
type CompanyResponse struct {
	ID             string    `json:"id"`
	Ruc            string    `json:"ruc"`
	BusinessName   string    `json:"business_name"`
	SunatStatus    string    `json:"sunat_status"`
	SunatCondition string    `json:"sunat_condition"`
	TaxRegime      string    `json:"tax_regime"`
	RiskLevel      string    `json:"risk_level"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
