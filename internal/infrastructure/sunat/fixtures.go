package sunat

import "github.com/lucatax/luca-api/internal/domain/entity"

// Data de referencia del padrón simulado. Cubre los cuatro escenarios que la
// UI necesita ejercitar: contribuyente activo, suspendido, dado de baja y un
// RUC reservado que simula la caída del servicio de consulta.
var fixtureRucs = []entity.RucRecord{
	{
		Ruc:            "20123456789",
		BusinessName:   "ROCAFUERTE CONTRATISTAS GENERALES S.A.C.",
		SunatStatus:    "ACTIVO",
		SunatCondition: "HABIDO",
		Flag:           entity.TaxpayerActive,
	},
	{
		Ruc:            "20987654321",
		BusinessName:   "IMPORTACIONES SANTA ROSA E.I.R.L.",
		SunatStatus:    "ACTIVO",
		SunatCondition: "HABIDO",
		Flag:           entity.TaxpayerActive,
	},
	{
		Ruc:            "20111111111",
		BusinessName:   "COMERCIAL EL VALLE S.R.L.",
		SunatStatus:    "BAJA DE OFICIO",
		SunatCondition: "NO HABIDO",
		Flag:           entity.TaxpayerInactive,
	},
	{
		Ruc:            "20333333333",
		BusinessName:   "TRANSPORTES ANDINOS DEL SUR S.A.",
		SunatStatus:    "SUSPENSION TEMPORAL",
		SunatCondition: "HABIDO",
		Flag:           entity.TaxpayerSuspended,
	},
	{
		Ruc:            "20555555555",
		BusinessName:   "SERVICIOS DIGITALES LIMA S.A.C.",
		SunatStatus:    "ACTIVO",
		SunatCondition: "HABIDO",
		Flag:           entity.TaxpayerConnectionError,
	},
}

// Pares usuario/clave SOL considerados correctos por el portal simulado.
var fixtureCredentials = []entity.CredentialRecord{
	{SolUser: "ROCAFUER01", SolPassword: "password123"},
	{SolUser: "usuario1", SolPassword: "clave123"},
	{SolUser: "usuario2", SolPassword: "clave456"},
	{SolUser: "VALLE01", SolPassword: "clave789"},
}

// Usuarios reservados que simulan un error de conexión con el portal SOL.
var connectionErrorUsers = []string{"CONEXION01", "TIMEOUT07"}
