package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
)

// LocalSession clave de la sesión cargada por SessionMiddleware.
const LocalSession = "directory_session"

// sessionFinder es lo que el middleware necesita del registro de sesiones.
type sessionFinder interface {
	Get(id string) (*appdir.Session, error)
}

// SessionMiddleware carga la sesión del parámetro :id y escribe la cabecera con
// los parámetros de URL vigentes al responder. Sesión inexistente → 404.
func SessionMiddleware(finder sessionFinder, mirrors *mirrorRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := param(c, "id")
		s, err := finder.Get(id)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSession, s)
		err = c.Next()
		if m := mirrors.get(id); m != nil {
			c.Set(HeaderQuery, m.Encode())
		}
		return err
	}
}

// param copia el parámetro de ruta: fasthttp reutiliza el buffer de la petición y
// los valores que se guardan en sesiones o pendientes deben sobrevivirla.
func param(c *fiber.Ctx, name string) string {
	return utils.CopyString(c.Params(name))
}

func sessionFrom(c *fiber.Ctx) *appdir.Session {
	s, _ := c.Locals(LocalSession).(*appdir.Session)
	return s
}
