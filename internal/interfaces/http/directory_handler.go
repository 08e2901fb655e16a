package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	"github.com/jhoicas/directorio-escolar/internal/application/dto"
	"github.com/jhoicas/directorio-escolar/internal/domain"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

// ViewResponse estado de la sesión con la página actual ya aplanada.
type ViewResponse struct {
	appdir.View
	Rows    []dto.PersonResponse        `json:"rows"`
	Pending []dto.PendingActionResponse `json:"pending"`
}

// DirectoryHandler maneja las peticiones HTTP del directorio de usuarios (protegido).
type DirectoryHandler struct {
	manager     *appdir.Manager
	mirrors     *mirrorRegistry
	emailDomain string
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(manager *appdir.Manager, mirrors *mirrorRegistry, emailDomain string) *DirectoryHandler {
	return &DirectoryHandler{manager: manager, mirrors: mirrors, emailDomain: emailDomain}
}

func (h *DirectoryHandler) view(s *appdir.Session) ViewResponse {
	v := s.View()
	pending := h.manager.Coordinator().PendingFor(s.ID())
	out := ViewResponse{
		View:    v,
		Rows:    appdir.ToPersonResponses(v.Rows, h.emailDomain),
		Pending: make([]dto.PendingActionResponse, len(pending)),
	}
	for i, p := range pending {
		out.Pending[i] = appdir.ToPendingActionResponse(p)
	}
	return out
}

// ── Sesiones ──────────────────────────────────────────────────────────────────

// OpenSession godoc
// @Summary      Abrir sesión de consulta
// @Description  Lee q, tab, nivel, status, rol y tags de la query string una sola vez.
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  ViewResponse
// @Router       /api/directorio/sesiones [post]
func (h *DirectoryHandler) OpenSession(c *fiber.Ctx) error {
	params, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query string inválida"})
	}
	mirror := &headerMirror{}
	s := h.manager.Open(params, mirror)
	h.mirrors.put(s.ID(), mirror)

	out := h.view(s)
	mirror.Mirror(out.Params)
	c.Set(HeaderQuery, mirror.Encode())
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSession godoc
// @Summary      Estado de la sesión
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID de sesión"
// @Param        flush  query  bool    false  "Confirmar búsquedas pendientes"
// @Success      200  {object}  ViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/directorio/sesiones/{id} [get]
func (h *DirectoryHandler) GetSession(c *fiber.Ctx) error {
	s := sessionFrom(c)
	if c.QueryBool("flush") {
		s.Flush()
	}
	return c.JSON(h.view(s))
}

// CloseSession godoc
// @Summary      Cerrar sesión
// @Tags         directorio
// @Security     Bearer
// @Param        id  path  string  true  "ID de sesión"
// @Success      204
// @Router       /api/directorio/sesiones/{id} [delete]
func (h *DirectoryHandler) CloseSession(c *fiber.Ctx) error {
	id := param(c, "id")
	if err := h.manager.Close(id); err != nil {
		return writeError(c, err)
	}
	h.mirrors.remove(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateFilters godoc
// @Summary      Cambiar filtros
// @Description  Estado, nivel y rol se aplican al instante; búsqueda y etiquetas tras la ventana de espera salvo immediate.
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de sesión"
// @Param        body  body  dto.UpdateFiltersRequest  true  "Cambios"
// @Success      200  {object}  ViewResponse
// @Router       /api/directorio/sesiones/{id}/filtros [patch]
func (h *DirectoryHandler) UpdateFilters(c *fiber.Ctx) error {
	var in dto.UpdateFiltersRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s := sessionFrom(c)
	if in.Reset {
		s.ResetFilters()
		return c.JSON(h.view(s))
	}
	s.UpdateFilters(appdir.FilterPatch{
		SearchTerm: in.SearchTerm,
		TagFilter:  in.TagFilter,
		Status:     in.Status,
		Level:      in.Level,
		Role:       in.Role,
	})
	if in.Immediate {
		s.Flush()
	}
	return c.JSON(h.view(s))
}

// SetTab godoc
// @Summary      Cambiar pestaña
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID de sesión"
// @Param        body  body  dto.TabRequest  true  "Pestaña"
// @Success      200  {object}  ViewResponse
// @Router       /api/directorio/sesiones/{id}/pestana [post]
func (h *DirectoryHandler) SetTab(c *fiber.Ctx) error {
	var in dto.TabRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s := sessionFrom(c)
	s.SetTab(dirdomain.ParseTab(in.Tab))
	return c.JSON(h.view(s))
}

// ToggleSort godoc
// @Summary      Ordenar por columna
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de sesión"
// @Param        body  body  dto.SortRequest  true  "Clave de orden"
// @Success      200  {object}  ViewResponse
// @Router       /api/directorio/sesiones/{id}/orden [post]
func (h *DirectoryHandler) ToggleSort(c *fiber.Ctx) error {
	var in dto.SortRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s := sessionFrom(c)
	s.ToggleSort(in.Key)
	return c.JSON(h.view(s))
}

// GoToPage godoc
// @Summary      Ir a página
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de sesión"
// @Param        body  body  dto.GoToPageRequest  true  "Página"
// @Success      200  {object}  ViewResponse
// @Router       /api/directorio/sesiones/{id}/pagina [post]
func (h *DirectoryHandler) GoToPage(c *fiber.Ctx) error {
	var in dto.GoToPageRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s := sessionFrom(c)
	s.SetPage(in.Page)
	return c.JSON(h.view(s))
}

// ── Selección ─────────────────────────────────────────────────────────────────

// ToggleSelection godoc
// @Summary      Marcar o desmarcar un usuario
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID de sesión"
// @Param        identity  path  string  true  "DNI o documento"
// @Success      200
// @Router       /api/directorio/sesiones/{id}/seleccion/{identity} [post]
func (h *DirectoryHandler) ToggleSelection(c *fiber.Ctx) error {
	s := sessionFrom(c)
	identity := param(c, "identity")
	selected := s.ToggleSelection(identity)
	return c.JSON(fiber.Map{"identity": identity, "selected": selected, "count": len(s.SelectedIDs())})
}

// SelectPage godoc
// @Summary      Seleccionar o deseleccionar la página visible
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de sesión"
// @Param        body  body  dto.SelectPageRequest  true  "Casilla"
// @Success      200  {object}  ViewResponse
// @Router       /api/directorio/sesiones/{id}/seleccion-pagina [post]
func (h *DirectoryHandler) SelectPage(c *fiber.Ctx) error {
	var in dto.SelectPageRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s := sessionFrom(c)
	s.SelectPage(in.Checked)
	return c.JSON(h.view(s))
}

// ClearSelection godoc
// @Summary      Vaciar selección
// @Tags         directorio
// @Security     Bearer
// @Param        id  path  string  true  "ID de sesión"
// @Success      204
// @Router       /api/directorio/sesiones/{id}/seleccion [delete]
func (h *DirectoryHandler) ClearSelection(c *fiber.Ctx) error {
	sessionFrom(c).ClearSelection()
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Acciones ──────────────────────────────────────────────────────────────────

// RequestBulk godoc
// @Summary      Preparar acción masiva
// @Description  Devuelve la acción pendiente de confirmación. Una acción desconocida no hace nada (204).
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de sesión"
// @Param        body  body  dto.ActionRequest  true  "Acción"
// @Success      202  {object}  dto.PendingActionResponse
// @Success      204
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/directorio/sesiones/{id}/acciones-masivas [post]
func (h *DirectoryHandler) RequestBulk(c *fiber.Ctx) error {
	var in dto.ActionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.manager.Coordinator().Request(sessionFrom(c), appdir.ActionKind(in.Kind))
	if err != nil {
		return writeError(c, err)
	}
	if p == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusAccepted).JSON(appdir.ToPendingActionResponse(*p))
}

// ListPending godoc
// @Summary      Acciones pendientes de la sesión
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {array}  dto.PendingActionResponse
// @Router       /api/directorio/sesiones/{id}/pendientes [get]
func (h *DirectoryHandler) ListPending(c *fiber.Ctx) error {
	pending := h.manager.Coordinator().PendingFor(sessionFrom(c).ID())
	out := make([]dto.PendingActionResponse, len(pending))
	for i, p := range pending {
		out[i] = appdir.ToPendingActionResponse(p)
	}
	return c.JSON(out)
}

// ConfirmPending godoc
// @Summary      Confirmar acción pendiente
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        pid   path  string               true   "ID de la acción pendiente"
// @Param        body  body  dto.DecisionRequest  false  "Motivo"
// @Success      200  {object}  dto.ActionResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/directorio/pendientes/{pid}/confirmar [post]
func (h *DirectoryHandler) ConfirmPending(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	return h.resolve(c, appdir.Decision{Confirmed: true, Reason: in.Reason})
}

// CancelPending godoc
// @Summary      Cancelar acción pendiente
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        pid  path  string  true  "ID de la acción pendiente"
// @Success      200  {object}  dto.ActionResultResponse
// @Router       /api/directorio/pendientes/{pid}/cancelar [post]
func (h *DirectoryHandler) CancelPending(c *fiber.Ctx) error {
	return h.resolve(c, appdir.Decision{Confirmed: false})
}

func (h *DirectoryHandler) resolve(c *fiber.Ctx, d appdir.Decision) error {
	coord := h.manager.Coordinator()
	pid := param(c, "pid")
	p, ok := coord.Pending(pid)
	if !ok {
		return writeError(c, domain.ErrPendingActionNotFound)
	}
	// Cada pendiente se resuelve por su propia ruta: las masivas bajo su sesión,
	// las individuales fuera de cualquier sesión.
	sessionID := ""
	if s := sessionFrom(c); s != nil {
		sessionID = s.ID()
	}
	if p.SessionID != sessionID {
		return writeError(c, domain.ErrPendingActionNotFound)
	}
	res, err := coord.Resolve(c.UserContext(), pid, d)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appdir.ToActionResultResponse(*res))
}

// SingleAction godoc
// @Summary      Acción sobre un usuario
// @Description  Suspender y restablecer contraseña quedan pendientes (202); el resto se aplica al instante (200).
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        identity  path  string             true  "DNI o documento"
// @Param        body      body  dto.ActionRequest  true  "Acción"
// @Success      200  {object}  dto.ActionResultResponse
// @Success      202  {object}  dto.PendingActionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/directorio/usuarios/{identity}/acciones [post]
func (h *DirectoryHandler) SingleAction(c *fiber.Ctx) error {
	var in dto.ActionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, res, err := h.manager.Coordinator().RequestSingle(c.UserContext(), param(c, "identity"), appdir.ActionKind(in.Kind))
	switch {
	case err != nil:
		return writeError(c, err)
	case p != nil:
		return c.Status(fiber.StatusAccepted).JSON(appdir.ToPendingActionResponse(*p))
	case res != nil:
		return c.JSON(appdir.ToActionResultResponse(*res))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SaveUser godoc
// @Summary      Crear o editar usuario
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveUserRequest  true  "Datos del usuario"
// @Success      200  {object}  dto.SaveUserResponse
// @Success      201  {object}  dto.SaveUserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/directorio/usuarios [post]
func (h *DirectoryHandler) SaveUser(c *fiber.Ctx) error {
	var in dto.SaveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, created, err := h.manager.Coordinator().SaveUser(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SaveUserResponse{Created: created, User: appdir.ToPersonResponse(p, h.emailDomain)})
}

// ── Vistas guardadas ──────────────────────────────────────────────────────────

// SaveView godoc
// @Summary      Guardar la vista actual
// @Tags         directorio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de sesión"
// @Param        body  body  dto.SaveViewRequest  true  "Nombre"
// @Success      201  {object}  entity.SavedView
// @Router       /api/directorio/sesiones/{id}/vistas [post]
func (h *DirectoryHandler) SaveView(c *fiber.Ctx) error {
	var in dto.SaveViewRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	v, err := sessionFrom(c).SaveView(c.UserContext(), in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// ApplyView godoc
// @Summary      Aplicar vista guardada
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Param        vid  path  string  true  "ID de la vista"
// @Success      200  {object}  ViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/directorio/sesiones/{id}/vistas/{vid}/aplicar [post]
func (h *DirectoryHandler) ApplyView(c *fiber.Ctx) error {
	s := sessionFrom(c)
	if _, err := s.ApplyView(c.UserContext(), param(c, "vid")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view(s))
}

// ListViews godoc
// @Summary      Vistas guardadas
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.SavedView
// @Router       /api/directorio/vistas [get]
func (h *DirectoryHandler) ListViews(c *fiber.Ctx) error {
	views, err := h.manager.ListViews(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if views == nil {
		views = []entity.SavedView{}
	}
	return c.JSON(views)
}

// RemoveView godoc
// @Summary      Eliminar vista guardada
// @Tags         directorio
// @Security     Bearer
// @Param        vid  path  string  true  "ID de la vista"
// @Success      204
// @Router       /api/directorio/vistas/{vid} [delete]
func (h *DirectoryHandler) RemoveView(c *fiber.Ctx) error {
	if err := h.manager.RemoveView(c.UserContext(), param(c, "vid")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Consultas globales ────────────────────────────────────────────────────────

// Suggestions godoc
// @Summary      Búsqueda predictiva
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "Término"
// @Param        limit  query  int     false  "Máximo (5)"
// @Success      200  {array}  directory.Suggestion
// @Router       /api/directorio/sugerencias [get]
func (h *DirectoryHandler) Suggestions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", dirdomain.DefaultSuggestionLimit)
	return c.JSON(h.manager.Suggestions(c.Query("q"), limit))
}

// Activity godoc
// @Summary      Bitácora de actividad
// @Tags         directorio
// @Security     Bearer
// @Produce      json
// @Param        action  query  string  false  "Tipo de acción"
// @Param        target  query  string  false  "Usuario afectado"
// @Param        limit   query  int     false  "Límite (20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.ActivityLogResponse
// @Router       /api/directorio/actividad [get]
func (h *DirectoryHandler) Activity(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	logs, err := h.manager.Coordinator().ActivityLog(c.UserContext(), repository.ActivityLogFilter{
		Action:     entity.ActivityAction(c.Query("action")),
		TargetUser: c.Query("target"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ActivityLogResponse, len(logs))
	for i, l := range logs {
		out[i] = appdir.ToActivityLogResponse(l)
	}
	c.Set("X-Page-Limit", strconv.Itoa(page.Limit))
	return c.JSON(out)
}
