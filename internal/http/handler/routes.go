package handler

import (
	"database/sql"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notehub/internal/service"
)

// Services bundles the use-case layer for route registration.
type Services struct {
	Boards  service.BoardService
	Pages   service.PageService
	Folders service.FolderService
	Tasks   service.TaskService
	Shares  service.ShareService
	Usage   service.UsageService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. requireAuth
// guards everything under /api; shared-document resolution and the websocket
// endpoint authenticate by share credential instead.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, requireAuth fiber.Handler, shared SharedDocs, collab CollabDeps, gatherer prometheus.Gatherer) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Share-credential entry points (no login required).
	app.Get("/api/shared/verify", VerifyShareToken(svcs.Shares))
	app.Get("/api/shared/:kind/:id", ResolveSharedDocument(shared))

	// Realtime collaboration websocket.
	app.Use("/ws", UpgradeRequired())
	app.Get("/ws/collab", CollabSocket(collab))

	api := app.Group("/api", requireAuth)

	boards := api.Group("/boards")
	boards.Get("/", ListBoards(svcs.Boards))
	boards.Post("/", CreateBoard(svcs.Boards))
	boards.Get("/:id", GetBoard(svcs.Boards))
	boards.Put("/:id", UpdateBoard(svcs.Boards))
	boards.Put("/:id/folder", LinkBoardFolder(svcs.Boards))
	boards.Post("/:id/share", EnableBoardShare(svcs.Boards))
	boards.Delete("/:id", DeleteBoard(svcs.Boards))

	pages := api.Group("/pages")
	pages.Get("/", ListPages(svcs.Pages))
	pages.Post("/", CreatePage(svcs.Pages))
	pages.Get("/:id", GetPage(svcs.Pages))
	pages.Put("/:id/content", UpdatePageContent(svcs.Pages))
	pages.Put("/:id/folder", LinkPageFolder(svcs.Pages))
	pages.Delete("/:id", DeletePage(svcs.Pages))

	folders := api.Group("/folders")
	folders.Get("/", ListFolders(svcs.Folders))
	folders.Post("/", CreateFolder(svcs.Folders))
	folders.Get("/:id", GetFolder(svcs.Folders))
	folders.Delete("/:id", DeleteFolder(svcs.Folders))
	folders.Post("/:id/files", UploadFolderFile(svcs.Folders))
	folders.Get("/:id/files", ListFolderFiles(svcs.Folders))
	api.Get("/files/:fileId/download", DownloadFolderFile(svcs.Folders, svcs.Usage))
	api.Delete("/files/:fileId", DeleteFolderFile(svcs.Folders))

	tasks := api.Group("/tasks")
	tasks.Get("/", ListTasks(svcs.Tasks))
	tasks.Post("/", CreateTask(svcs.Tasks))
	tasks.Put("/:id", UpdateTask(svcs.Tasks))
	tasks.Delete("/:id", DeleteTask(svcs.Tasks))

	shares := api.Group("/shares")
	shares.Post("/", CreateShareLink(svcs.Shares))
	shares.Post("/invite", InviteCollaborator(svcs.Shares))
	shares.Delete("/:id", RevokeShare(svcs.Shares))

	api.Get("/users/:userId/tier", GetUserTier(svcs.Usage))
	api.Post("/track-download", TrackDownload(svcs.Usage))
	api.Put("/logintoken", PutLoginToken(svcs.Usage))
	api.Get("/logintoken", GetLoginToken(svcs.Usage))
}
