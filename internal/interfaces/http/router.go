package http

import (
	"github.com/gofiber/fiber/v2"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	"github.com/jhoicas/directorio-escolar/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Directory   *appdir.Manager
	EmailDomain string
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todo el directorio exige token de director.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	mirrors := newMirrorRegistry()
	h := NewDirectoryHandler(deps.Directory, mirrors, deps.EmailDomain)

	dir := api.Group("/directorio",
		AuthMiddleware(deps.JWTSecret, deps.JWTIssuer),
		RequireRole(jwt.RoleDirector),
	)

	// Sesiones de consulta
	dir.Post("/sesiones", h.OpenSession)
	sess := dir.Group("/sesiones/:id", SessionMiddleware(deps.Directory, mirrors))
	sess.Get("/", h.GetSession)
	sess.Delete("/", h.CloseSession)
	sess.Patch("/filtros", h.UpdateFilters)
	sess.Post("/pestana", h.SetTab)
	sess.Post("/orden", h.ToggleSort)
	sess.Post("/pagina", h.GoToPage)
	sess.Post("/seleccion/:identity", h.ToggleSelection)
	sess.Post("/seleccion-pagina", h.SelectPage)
	sess.Delete("/seleccion", h.ClearSelection)
	sess.Post("/acciones-masivas", h.RequestBulk)
	sess.Get("/pendientes", h.ListPending)
	sess.Post("/pendientes/:pid/confirmar", h.ConfirmPending)
	sess.Post("/pendientes/:pid/cancelar", h.CancelPending)
	sess.Post("/vistas", h.SaveView)
	sess.Post("/vistas/:vid/aplicar", h.ApplyView)

	// Pendientes de acciones individuales
	dir.Post("/pendientes/:pid/confirmar", h.ConfirmPending)
	dir.Post("/pendientes/:pid/cancelar", h.CancelPending)

	// Vistas guardadas
	dir.Get("/vistas", h.ListViews)
	dir.Delete("/vistas/:vid", h.RemoveView)

	// Consultas sobre la colección completa
	dir.Get("/sugerencias", h.Suggestions)
	dir.Get("/actividad", h.Activity)

	// Usuarios
	dir.Post("/usuarios", h.SaveUser)
	dir.Post("/usuarios/:identity/acciones", h.SingleAction)
}
