package entity

// Estados posibles de un contribuyente en el directorio SUNAT simulado.
// "error_conexion" marca registros reservados que simulan una caída transitoria
// del servicio al consultarlos.
const (
	TaxpayerActive          = "active"
	TaxpayerInactive        = "inactive"
	TaxpayerSuspended       = "suspended"
	TaxpayerConnectionError = "error_conexion"
)

// RucRecord registro del padrón de contribuyentes: lo que devuelve la consulta
// por RUC. En producción vendría de la API de SUNAT; aquí es data de referencia.
type RucRecord struct {
	Ruc            string `json:"ruc"`
	BusinessName   string `json:"businessName"`
	SunatStatus    string `json:"sunatStatus"`    // ej. "ACTIVO", "BAJA DE OFICIO"
	SunatCondition string `json:"sunatCondition"` // ej. "HABIDO", "NO HABIDO"
	Flag           string `json:"flag"`           // active | inactive | suspended | error_conexion
}

// CredentialRecord par usuario/clave SOL considerado correcto por el portal.
type CredentialRecord struct {
	SolUser     string `json:"solUser"`
	SolPassword string `json:"solPassword"`
}
