package entity

// RucValidation resultado de la validación del RUC de una entrada.
// El valor cero (RucNone) significa "sin validar"; RucValidating es transitorio
// y siempre termina en un valor terminal tras la latencia del directorio.
type RucValidation string

const (
	RucNone            RucValidation = ""
	RucValidating      RucValidation = "validating"
	RucValid           RucValidation = "valid"
	RucInvalid         RucValidation = "invalid"
	RucDuplicate       RucValidation = "duplicate"
	RucInactive        RucValidation = "inactive"
	RucConnectionError RucValidation = "error_conexion"
)

// Terminal informa si el sub-estado ya no va a cambiar solo.
func (v RucValidation) Terminal() bool {
	return v != RucNone && v != RucValidating
}

// CredValidation resultado de la validación de credenciales SOL.
type CredValidation string

const (
	CredNone            CredValidation = ""
	CredValidating      CredValidation = "validating"
	CredValid           CredValidation = "valid"
	CredInvalid         CredValidation = "invalid"
	CredConnectionError CredValidation = "error_conexion"
)

// Terminal informa si el sub-estado ya no va a cambiar solo.
func (v CredValidation) Terminal() bool {
	return v != CredNone && v != CredValidating
}

// EntryStatus estado global de una entrada del asistente, derivado siempre de
// los dos sub-estados de validación más el contenido de los campos. Nunca se
// almacena información que no pueda reconstruirse desde esos insumos.
type EntryStatus string

const (
	StatusIncomplete      EntryStatus = "incompleto"
	StatusValidating      EntryStatus = "validando"
	StatusInvalid         EntryStatus = "no_valido"
	StatusVerified        EntryStatus = "verificada"
	StatusConnectionError EntryStatus = "error_conexion"
)

// ValidationState sub-estados de validación de una entrada.
type ValidationState struct {
	Ruc         RucValidation  `json:"ruc"`
	Credentials CredValidation `json:"credentials"`
}

// CompanyEntry una fila del asistente de vinculación: una empresa en proceso
// de conexión vía RUC + credenciales SOL.
type CompanyEntry struct {
	ID  string `json:"id"`
	Ruc string `json:"ruc"`

	// Campos derivados del directorio SUNAT; se limpian cuando el RUC se
	// borra o deja de ser válido.
	BusinessName   string `json:"businessName"`
	SunatStatus    string `json:"sunatStatus"`
	SunatCondition string `json:"sunatCondition"`

	SolUser     string `json:"solUser"`
	SolPassword string `json:"solPassword"`

	ValidationState ValidationState `json:"validationState"`
	Status          EntryStatus     `json:"status"`
	IsValid         bool            `json:"isValid"`

	// Expanded es estado de UI: como máximo una entrada expandida a la vez.
	Expanded bool `json:"expanded"`
}

// ClearDerived limpia los campos poblados desde el directorio.
func (e *CompanyEntry) ClearDerived() {
	e.BusinessName = ""
	e.SunatStatus = ""
	e.SunatCondition = ""
}
