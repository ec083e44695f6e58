package sunat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/internal/infrastructure/sunat"
)

func TestLookupRUC_ActivoConDatosDelPadron(t *testing.T) {
	d := sunat.NewStaticDirectory()

	record, err := d.LookupRUC(context.Background(), "20123456789")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "ROCAFUERTE CONTRATISTAS GENERALES S.A.C.", record.BusinessName)
	assert.Equal(t, "ACTIVO", record.SunatStatus)
	assert.Equal(t, "HABIDO", record.SunatCondition)
	assert.Equal(t, entity.TaxpayerActive, record.Flag)
}

func TestLookupRUC_NormalizaElFormatoDeEntrada(t *testing.T) {
	d := sunat.NewStaticDirectory()

	record, err := d.LookupRUC(context.Background(), "20.123.456-789")
	require.NoError(t, err)
	require.NotNil(t, record, "puntos y guiones no impiden la consulta")
}

func TestLookupRUC_Inexistente(t *testing.T) {
	d := sunat.NewStaticDirectory()

	record, err := d.LookupRUC(context.Background(), "20999999999")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestLookupRUC_Flags(t *testing.T) {
	d := sunat.NewStaticDirectory()
	ctx := context.Background()

	inactivo, err := d.LookupRUC(ctx, "20111111111")
	require.NoError(t, err)
	require.NotNil(t, inactivo)
	assert.Equal(t, entity.TaxpayerInactive, inactivo.Flag)

	suspendido, err := d.LookupRUC(ctx, "20333333333")
	require.NoError(t, err)
	require.NotNil(t, suspendido)
	assert.Equal(t, entity.TaxpayerSuspended, suspendido.Flag)

	caida, err := d.LookupRUC(ctx, "20555555555")
	require.NoError(t, err)
	require.NotNil(t, caida)
	assert.Equal(t, entity.TaxpayerConnectionError, caida.Flag)
}

func TestVerifyCredentials_ParExacto(t *testing.T) {
	d := sunat.NewStaticDirectory()
	ctx := context.Background()

	ok, err := d.VerifyCredentials(ctx, "ROCAFUER01", "password123")
	require.NoError(t, err)
	assert.NotNil(t, ok)

	mal, err := d.VerifyCredentials(ctx, "ROCAFUER01", "otra-clave")
	require.NoError(t, err)
	assert.Nil(t, mal, "la clave debe coincidir exactamente")

	nadie, err := d.VerifyCredentials(ctx, "NOEXISTE", "password123")
	require.NoError(t, err)
	assert.Nil(t, nadie)
}

func TestIsConnectionErrorUser(t *testing.T) {
	d := sunat.NewStaticDirectory()

	assert.True(t, d.IsConnectionErrorUser("CONEXION01"))
	assert.True(t, d.IsConnectionErrorUser("TIMEOUT07"))
	assert.False(t, d.IsConnectionErrorUser("ROCAFUER01"))
}
