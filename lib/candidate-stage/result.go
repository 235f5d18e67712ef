package candidatestage

import (
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	candidateapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/candidate"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
)

// TransitionResult separates the committed status change from the outcome of
// its side effects.
type TransitionResult struct {
	Candidate          dbmodels.Candidate
	Reconcile          reconciler.Result
	ReconcileErr       error
	Notification       NotificationResult
	AccountEmailSynced bool
}

type NotificationResult struct {
	Attempted bool
	Sent      bool
	Err       error
}

func (r TransitionResult) View() candidateapimodels.TransitionView {
	view := candidateapimodels.TransitionView{
		Candidate: candidateapimodels.CandidateConvert(r.Candidate),
		Tasks: candidateapimodels.ReconcileView{
			Created: r.Reconcile.Created,
			Deleted: r.Reconcile.Deleted,
			NoOp:    r.Reconcile.NoOp,
			Reason:  string(r.Reconcile.Reason),
		},
		Notification: candidateapimodels.NotificationView{
			Attempted: r.Notification.Attempted,
			Sent:      r.Notification.Sent,
		},
		AccountEmailSynced: r.AccountEmailSynced,
	}
	if r.ReconcileErr != nil {
		view.Tasks.Error = r.ReconcileErr.Error()
	}
	if r.Notification.Err != nil {
		view.Notification.Error = r.Notification.Err.Error()
	}
	return view
}
