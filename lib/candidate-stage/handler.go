// Package candidatestage moves candidates through the hiring pipeline.
// Status and account changes are the primary effects and fail the call;
// task reconciliation and notifications are side effects reported in the
// result and never undo the status change.
package candidatestage

import (
	"context"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/account"
	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	candidatestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate/store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/metrics"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/notifier"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	initchecker "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/init-checker"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Hire(ctx context.Context, candidateID, userID string) (TransitionResult, error)
	Reject(ctx context.Context, candidateID, userID string) (TransitionResult, error)
	UpdateStatus(ctx context.Context, candidateID string, status models.CandidateStatus, userID string) (TransitionResult, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"directory", account.Instance,
		"reconciler", reconciler.Instance,
		"notifier", notifier.Instance,
		"history", candidatehistoryhandler.Instance,
	)
	Instance = NewInstance(
		candidatestore.NewInstance(db.DB),
		account.Instance,
		reconciler.Instance,
		notifier.Instance,
		candidatehistoryhandler.Instance,
	)
}

func NewInstance(
	candidateStore candidatestore.Provider,
	directory account.Directory,
	taskReconciler reconciler.Provider,
	messages notifier.Provider,
	history candidatehistoryhandler.Provider,
) Provider {
	return impl{
		candidateStore: candidateStore,
		directory:      directory,
		reconciler:     taskReconciler,
		notifier:       messages,
		history:        history,
	}
}

type impl struct {
	candidateStore candidatestore.Provider
	directory      account.Directory
	reconciler     reconciler.Provider
	notifier       notifier.Provider
	history        candidatehistoryhandler.Provider
}

func (i impl) Hire(ctx context.Context, candidateID, userID string) (result TransitionResult, err error) {
	defer func() { countTransition(models.CandidateStatusHired, err) }()
	logger := log.WithField("candidate_id", candidateID)

	candidate, err := i.loadCandidate(ctx, candidateID)
	if err != nil {
		return result, err
	}
	email := account.NormalizeEmail(candidate.Email)
	if email == "" {
		return result, models.NewValidationError("candidate email is required to hire")
	}

	emailSynced, err := i.syncAccount(ctx, candidate, email, logger)
	if err != nil {
		return result, err
	}

	wasHired := candidate.IsHired()
	err = i.candidateStore.Update(ctx, candidateID, map[string]interface{}{
		"status": models.CandidateStatusHired,
	})
	if err != nil {
		logger.WithError(err).Error("hire: failed to update candidate status")
		return result, models.NewPersistenceError(err, "failed to update candidate status")
	}
	prevStatus := candidate.Status
	candidate.Status = models.CandidateStatusHired
	result.Candidate = *candidate
	result.AccountEmailSynced = emailSynced

	result.Reconcile, result.ReconcileErr = i.reconciler.Reconcile(ctx, candidateID)
	if result.ReconcileErr != nil {
		logger.WithError(result.ReconcileErr).Warn("hire: onboarding tasks will be repaired on next access")
	}

	if !wasHired {
		result.Notification = notify(ctx, i.notifier.SendOfferEmail, *candidate, logger)
		i.history.Save(ctx, candidateID, userID, dbmodels.HistoryTypeHire, statusChanges(prevStatus, candidate.Status))
	}
	return result, nil
}

// syncAccount makes sure the candidate owns an active RBT account for email.
// Only the account linked through candidate.UserID counts as the candidate's
// own. A new account is linked before anything else is written, so on
// success candidate.UserID is set.
// An email update that hits the unique index degrades to a role-only update.
func (i impl) syncAccount(ctx context.Context, candidate *dbmodels.Candidate, email string, logger *log.Entry) (emailSynced bool, err error) {
	owner, err := i.directory.FindAccountByEmail(ctx, email)
	if err != nil {
		logger.WithError(err).Error("hire: account lookup failed")
		return false, models.NewPersistenceError(err, "failed to check account email")
	}
	if owner != nil && (candidate.UserID == nil || *candidate.UserID != owner.ID) {
		return false, models.NewConflictError("email is already used by another account")
	}

	if candidate.UserID == nil && owner == nil {
		accountID, err := i.directory.CreateAccount(ctx, dbmodels.User{
			FirstName: candidate.FirstName,
			LastName:  candidate.LastName,
			Email:     email,
			Phone:     candidate.Phone,
			Role:      models.UserRoleRBT,
			IsActive:  true,
		})
		if errors.Is(err, account.ErrEmailTaken) {
			return false, models.NewConflictError("email is already used by another account")
		}
		if err != nil {
			logger.WithError(err).Error("hire: failed to create account")
			return false, models.NewPersistenceError(err, "failed to create candidate account")
		}
		err = i.candidateStore.Update(ctx, candidate.ID, map[string]interface{}{
			"user_id": accountID,
		})
		if err != nil {
			logger.WithError(err).WithField("user_id", accountID).Error("hire: failed to link created account")
			return false, models.NewPersistenceError(err, "failed to link candidate account")
		}
		candidate.UserID = &accountID
		return true, nil
	}

	upd := account.AccountUpdate{Role: models.UserRoleRBT, Active: true}
	accountID := *candidate.UserID
	if owner == nil {
		upd.Email = &email
	}
	err = i.directory.UpdateAccount(ctx, accountID, upd)
	if errors.Is(err, account.ErrEmailTaken) {
		logger.Warn("hire: account email is taken, updating role only")
		upd.Email = nil
		err = i.directory.UpdateAccount(ctx, accountID, upd)
		if err != nil {
			logger.WithError(err).Error("hire: failed to update account role")
			return false, models.NewPersistenceError(err, "failed to update candidate account")
		}
		return false, nil
	}
	if err != nil {
		logger.WithError(err).Error("hire: failed to update account")
		return false, models.NewPersistenceError(err, "failed to update candidate account")
	}
	return true, nil
}

func (i impl) Reject(ctx context.Context, candidateID, userID string) (result TransitionResult, err error) {
	defer func() { countTransition(models.CandidateStatusRejected, err) }()
	logger := log.WithField("candidate_id", candidateID)

	candidate, err := i.loadCandidate(ctx, candidateID)
	if err != nil {
		return result, err
	}
	prevStatus := candidate.Status
	err = i.candidateStore.Update(ctx, candidateID, map[string]interface{}{
		"status": models.CandidateStatusRejected,
	})
	if err != nil {
		logger.WithError(err).Error("reject: failed to update candidate status")
		return result, models.NewPersistenceError(err, "failed to update candidate status")
	}
	candidate.Status = models.CandidateStatusRejected
	result.Candidate = *candidate
	result.Reconcile = reconciler.Result{NoOp: true}

	if prevStatus != models.CandidateStatusRejected {
		result.Notification = notify(ctx, i.notifier.SendRejectionEmail, *candidate, logger)
		i.history.Save(ctx, candidateID, userID, dbmodels.HistoryTypeReject, statusChanges(prevStatus, candidate.Status))
	}
	return result, nil
}

// UpdateStatus applies any status. HIRED and REJECTED go through Hire and
// Reject so their checks and side effects always run.
func (i impl) UpdateStatus(ctx context.Context, candidateID string, status models.CandidateStatus, userID string) (result TransitionResult, err error) {
	if !status.IsValid() {
		return result, models.NewValidationError("unknown candidate status")
	}
	switch status {
	case models.CandidateStatusHired:
		return i.Hire(ctx, candidateID, userID)
	case models.CandidateStatusRejected:
		return i.Reject(ctx, candidateID, userID)
	}
	defer func() { countTransition(status, err) }()
	logger := log.WithField("candidate_id", candidateID).WithField("status", status)

	candidate, err := i.loadCandidate(ctx, candidateID)
	if err != nil {
		return result, err
	}
	prevStatus := candidate.Status
	err = i.candidateStore.Update(ctx, candidateID, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		logger.WithError(err).Error("failed to update candidate status")
		return result, models.NewPersistenceError(err, "failed to update candidate status")
	}
	candidate.Status = status
	result.Candidate = *candidate
	// tasks are only managed for hired candidates
	result.Reconcile = reconciler.Result{NoOp: true}
	if prevStatus == status {
		return result, nil
	}
	if prevStatus == models.CandidateStatusHired {
		logger.Warn("candidate moved out of HIRED, existing onboarding tasks are kept")
	}
	if status == models.CandidateStatusReachOut {
		result.Notification = notify(ctx, i.notifier.SendReachOutEmail, *candidate, logger)
	}
	i.history.Save(ctx, candidateID, userID, dbmodels.HistoryTypeStageChange, statusChanges(prevStatus, status))
	return result, nil
}

func (i impl) loadCandidate(ctx context.Context, candidateID string) (*dbmodels.Candidate, error) {
	candidate, err := i.candidateStore.GetByID(ctx, candidateID)
	if err != nil {
		log.WithError(err).WithField("candidate_id", candidateID).Error("failed to load candidate")
		return nil, models.NewPersistenceError(err, "failed to load candidate")
	}
	if candidate == nil {
		return nil, models.NewNotFoundError("candidate not found")
	}
	return candidate, nil
}

func notify(ctx context.Context, send func(context.Context, dbmodels.Candidate) error, candidate dbmodels.Candidate, logger *log.Entry) NotificationResult {
	err := send(ctx, candidate)
	if err != nil {
		logger.WithError(err).Warn("notification was not delivered")
		return NotificationResult{
			Attempted: true,
			Err:       models.WrapAppError(models.NotificationError, err, "notification was not delivered"),
		}
	}
	return NotificationResult{Attempted: true, Sent: true}
}

func statusChanges(from, to models.CandidateStatus) dbmodels.EntityChanges {
	return dbmodels.EntityChanges{
		Description: "Status changed from " + from.ToHuman() + " to " + to.ToHuman(),
		Data: []dbmodels.FieldChanges{
			{
				Field:    "status",
				OldValue: from,
				NewValue: to,
			},
		},
	}
}

func countTransition(status models.CandidateStatus, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(models.KindOf(err))
	}
	metrics.StageTransitions.WithLabelValues(string(status), outcome).Inc()
}
