package apiv1

import (
	"github.com/Aaron071982/riseandshineHRM-final-sub000/controllers"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/middleware"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	apimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api"
	onboardingapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/onboarding"
	"github.com/gofiber/fiber/v2"
)

type onboardingApiController struct {
	controllers.BaseAPIController
}

// InitOnboardingApiRouters registers the endpoints a hired candidate uses for
// their own checklist; app is mounted under /onboarding. The candidate is taken
// from the token subject.
func InitOnboardingApiRouters(app fiber.Router) {
	controller := onboardingApiController{}
	app.Get("dashboard", controller.dashboard)
	app.Put("task/:id/complete", controller.completeTask)
}

// @Summary Onboarding dashboard
// @Tags Onboarding
// @Description Checklist and the gate that decides which screen to show
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/dashboard [get]
func (c *onboardingApiController) dashboard(ctx *fiber.Ctx) error {
	candidateID, err := onboarding.Instance.CandidateIDByUser(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	view, err := onboarding.Instance.GetDashboard(ctx.UserContext(), candidateID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Complete onboarding task
// @Tags Onboarding
// @Description Tasks complete in order; certificate and signature tasks need upload_url
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Param	body body	 onboardingapimodels.CompleteTaskData	true	"upload payload"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/task/{id}/complete [put]
func (c *onboardingApiController) completeTask(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	var payload onboardingapimodels.CompleteTaskData
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
		}
	}
	candidateID, err := onboarding.Instance.CandidateIDByUser(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	view, err := onboarding.Instance.CompleteTask(ctx.UserContext(), candidateID, taskID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
