package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/config"
	apiv1 "github.com/Aaron071982/riseandshineHRM-final-sub000/controllers/v1"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/fiberlog"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/initializers"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/middleware"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMB * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())

	if *config.Conf.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: "./docs/swagger.json",
		}))
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	apiV1.Use(middleware.WithBodyLimit(int64(bodyLimit)))

	//admin
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired(config.Conf.Auth.JWTSecret))
	admin.Use(middleware.AdminRoleRequired())
	apiv1.InitCandidateApiRouters(admin)

	//candidate portal
	portal := fiber.New()
	apiV1.Mount("/onboarding", portal)
	portal.Use(middleware.AuthorizationRequired(config.Conf.Auth.JWTSecret))
	portal.Use(middleware.RoleRequired(models.UserRoleRBT, models.UserRoleCandidate))
	apiv1.InitOnboardingApiRouters(portal)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		if initializers.RedisClient != nil {
			_ = initializers.RedisClient.Close()
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
