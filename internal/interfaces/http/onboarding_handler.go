package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/application/onboarding"
	"github.com/lucatax/luca-api/internal/domain"
)

// OnboardingHandler expone el asistente de vinculación de empresas.
// Cada acción devuelve el snapshot completo de la sesión; la UI se
// repinta desde él y ejecuta los intents drenados.
type OnboardingHandler struct {
	uc *onboarding.OnboardingUseCase
}

// NewOnboardingHandler construye el handler inyectando el caso de uso.
func NewOnboardingHandler(uc *onboarding.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// respond mapea los errores del caso de uso a códigos HTTP.
func (h *OnboardingHandler) respond(c *fiber.Ctx, out interface{}, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: "sesión no encontrada o expirada"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo no editable"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "acción no válida en el estado actual"})
		case errors.Is(err, domain.ErrNoVerifiedEntries):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_VERIFIED_ENTRIES", Message: "se necesita al menos una empresa verificada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// StartSession godoc
// @Summary      Iniciar sesión de onboarding
// @Tags         onboarding
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions [post]
func (h *OnboardingHandler) StartSession(c *fiber.Ctx) error {
	out, err := h.uc.StartSession(GetUserID(c))
	if err != nil {
		return h.respond(c, nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSession godoc
// @Summary      Snapshot de la sesión
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/sessions/{id} [get]
func (h *OnboardingHandler) GetSession(c *fiber.Ctx) error {
	out, err := h.uc.GetSession(c.Params("id"))
	return h.respond(c, out, err)
}

// AddCompany godoc
// @Summary      Agregar una entrada vacía
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions/{id}/companies [post]
func (h *OnboardingHandler) AddCompany(c *fiber.Ctx) error {
	out, err := h.uc.AddCompany(c.Params("id"))
	return h.respond(c, out, err)
}

// DeleteCompany godoc
// @Summary      Eliminar una entrada
// @Tags         onboarding
// @Produce      json
// @Param        id       path  string  true  "ID de sesión"
// @Param        entryId  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/sessions/{id}/companies/{entryId} [delete]
func (h *OnboardingHandler) DeleteCompany(c *fiber.Ctx) error {
	out, err := h.uc.DeleteCompany(c.Params("id"), c.Params("entryId"))
	return h.respond(c, out, err)
}

// UpdateField godoc
// @Summary      Editar un campo de una entrada
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id       path  string                  true  "ID de sesión"
// @Param        entryId  path  string                  true  "ID de la entrada"
// @Param        body     body  dto.UpdateFieldRequest  true  "Campo y valor"
// @Success      200  {object}  dto.SessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/onboarding/sessions/{id}/companies/{entryId} [patch]
func (h *OnboardingHandler) UpdateField(c *fiber.Ctx) error {
	var in dto.UpdateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field es requerido"})
	}
	out, err := h.uc.UpdateField(c.Params("id"), c.Params("entryId"), in.Field, in.Value)
	return h.respond(c, out, err)
}

// ToggleExpand godoc
// @Summary      Expandir/colapsar una entrada (acordeón)
// @Tags         onboarding
// @Produce      json
// @Param        id       path  string  true  "ID de sesión"
// @Param        entryId  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions/{id}/companies/{entryId}/expand [post]
func (h *OnboardingHandler) ToggleExpand(c *fiber.Ctx) error {
	out, err := h.uc.ToggleExpand(c.Params("id"), c.Params("entryId"))
	return h.respond(c, out, err)
}

// SaveDraft godoc
// @Summary      Guardar borrador de la sesión
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SaveDraftResponse
// @Router       /api/onboarding/sessions/{id}/draft [put]
func (h *OnboardingHandler) SaveDraft(c *fiber.Ctx) error {
	out, err := h.uc.SaveDraft(c.Params("id"))
	return h.respond(c, out, err)
}

// ClearDraft godoc
// @Summary      Eliminar el borrador de la sesión
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions/{id}/draft [delete]
func (h *OnboardingHandler) ClearDraft(c *fiber.Ctx) error {
	out, err := h.uc.ClearDraft(c.Params("id"))
	return h.respond(c, out, err)
}

// Complete godoc
// @Summary      Completar el onboarding y promover empresas verificadas
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.CompleteOnboardingResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/onboarding/sessions/{id}/complete [post]
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Params("id"))
	return h.respond(c, out, err)
}

// StartTour godoc
// @Summary      Iniciar el tour de bienvenida
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions/{id}/tour/start [post]
func (h *OnboardingHandler) StartTour(c *fiber.Ctx) error {
	out, err := h.uc.StartTour(c.Params("id"))
	return h.respond(c, out, err)
}

// AdvanceTour godoc
// @Summary      Avanzar al siguiente paso del tour
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/onboarding/sessions/{id}/tour/advance [post]
func (h *OnboardingHandler) AdvanceTour(c *fiber.Ctx) error {
	out, err := h.uc.AdvanceTour(c.Params("id"))
	return h.respond(c, out, err)
}

// SkipTour godoc
// @Summary      Saltar el tour
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions/{id}/tour/skip [post]
func (h *OnboardingHandler) SkipTour(c *fiber.Ctx) error {
	out, err := h.uc.SkipTour(c.Params("id"))
	return h.respond(c, out, err)
}

// CloseTour godoc
// @Summary      Cerrar el tour
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/onboarding/sessions/{id}/tour/close [post]
func (h *OnboardingHandler) CloseTour(c *fiber.Ctx) error {
	out, err := h.uc.CloseTour(c.Params("id"))
	return h.respond(c, out, err)
}
