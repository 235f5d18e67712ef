package apiv1

import (
	"fmt"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/controllers"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate"
	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	candidatestage "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-stage"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/middleware"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	apimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api"
	candidateapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/candidate"
	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app fiber.Router) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Post("export/xlsx", controller.exportXlsx)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("status", controller.updateStatus)
			idRouter.Put("hire", controller.hire)
			idRouter.Put("reject", controller.reject)
			idRouter.Put("reconcile", controller.reconcile) // rebuild onboarding tasks now
			idRouter.Post("history", controller.history)
			idRouter.Get("onboarding", controller.onboarding)
			idRouter.Get("onboarding/pdf", controller.onboardingPdf)
		})
	})
}

// @Summary Add candidate
// @Tags Candidate
// @Description Add a candidate to the pipeline with status NEW
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"candidate data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	id, err := candidate.Instance.Create(ctx.UserContext(), payload, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate list
// @Tags Candidate
// @Description Candidates filtered by status and search text
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	list, rowCount, err := candidate.Instance.List(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Export candidates to xlsx
// @Tags Candidate
// @Description Every candidate matching the filter, paging is ignored
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"filter"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/export/xlsx [post]
func (c *candidateApiController) exportXlsx(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	buf, err := candidate.Instance.ExportXlsx(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Attachment(fmt.Sprintf("candidates_%s.xlsx", time.Now().Format("2006-01-02")))
	return ctx.Send(buf.Bytes())
}

// @Summary Get candidate
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	view, err := candidate.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update candidate profile
// @Tags Candidate
// @Description Profile fields only, status changes go through the status endpoints
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.CandidateData	true	"candidate data"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	view, err := candidate.Instance.Update(ctx.UserContext(), id, payload, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Change candidate status
// @Tags Candidate
// @Description Any status is accepted; HIRED and REJECTED run the hire and reject flows
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.StatusData	true	"new status"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.TransitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	var payload candidateapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	result, err := candidatestage.Instance.UpdateStatus(ctx.UserContext(), id, models.CandidateStatus(payload.Status), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.View()))
}

// @Summary Hire candidate
// @Tags Candidate
// @Description Links the RBT account, builds onboarding tasks and sends the offer email
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.TransitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/hire [put]
func (c *candidateApiController) hire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	result, err := candidatestage.Instance.Hire(ctx.UserContext(), id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.View()))
}

// @Summary Reject candidate
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.TransitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/reject [put]
func (c *candidateApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	result, err := candidatestage.Instance.Reject(ctx.UserContext(), id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.View()))
}

// @Summary Reconcile onboarding tasks
// @Tags Candidate
// @Description Brings the candidate's onboarding tasks to the canonical set
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ReconcileView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/reconcile [put]
func (c *candidateApiController) reconcile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	result, err := reconciler.Instance.Reconcile(ctx.UserContext(), id)
	if err != nil && models.KindOf(err) == models.NotFoundError {
		return c.SendError(ctx, err)
	}
	view := candidateapimodels.ReconcileView{
		Created: result.Created,
		Deleted: result.Deleted,
		NoOp:    result.NoOp,
		Reason:  string(result.Reason),
	}
	if err != nil {
		view.Error = err.Error()
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Candidate history
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 apimodels.Pagination	true	"page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/history [post]
func (c *candidateApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	var payload apimodels.Pagination
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	list, rowCount, err := candidatehistoryhandler.Instance.List(ctx.UserContext(), id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Candidate onboarding dashboard
// @Tags Candidate
// @Description Same view the hired candidate sees
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/onboarding [get]
func (c *candidateApiController) onboarding(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	view, err := onboarding.Instance.GetDashboard(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Onboarding checklist pdf
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/candidate/{id}/onboarding/pdf [get]
func (c *candidateApiController) onboardingPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithKind(models.ValidationError, err.Error()))
	}
	file, err := onboarding.Instance.ChecklistPdf(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Attachment(fmt.Sprintf("onboarding_%s.pdf", id))
	return ctx.Send(file)
}
