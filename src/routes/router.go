package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mergington-activities/src/controllers"
	"mergington-activities/src/middleware"
	"mergington-activities/src/utils"
)

const landingPage = "/static/index.html"

// Options ค่าที่ต้องใช้ประกอบ fiber app
type Options struct {
	AllowedOrigins string
	StaticDir      string
	Log            *zap.Logger
}

// NewApp builds the fiber app with middleware and every route.
func NewApp(opts Options, activity *controllers.ActivityController) *fiber.App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:   "Mergington High School API",
		// ค่าจาก Params/Query ถูกเก็บไว้ใน roster ตลอดอายุ process
		Immutable: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return utils.HandleError(c, code, err.Error())
		},
	})

	origins := strings.TrimSpace(opts.AllowedOrigins)
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	InitRoutes(app, activity, opts.StaticDir)
	return app
}

func InitRoutes(app *fiber.App, activity *controllers.ActivityController, staticDir string) {
	activityRoutes(app, activity)

	if staticDir != "" {
		app.Static("/static", staticDir)
	}

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(landingPage, fiber.StatusTemporaryRedirect)
	})
}
