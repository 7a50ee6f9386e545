package route

import (
	"github.com/gofiber/fiber/v2"

	"lukebarnabas_backend/internals/features/shell/controller"
)

func ShellConfigRoutes(api fiber.Router) {
	ctrl := controller.NewShellConfigController()
	api.Get("/app-config", ctrl.GetShellConfig)
}
