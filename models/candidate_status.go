package models

import "github.com/pkg/errors"

type CandidateStatus string

const (
	CandidateStatusNew                CandidateStatus = "NEW"
	CandidateStatusReachOut           CandidateStatus = "REACH_OUT"
	CandidateStatusToInterview        CandidateStatus = "TO_INTERVIEW"
	CandidateStatusInterviewScheduled CandidateStatus = "INTERVIEW_SCHEDULED"
	CandidateStatusInterviewCompleted CandidateStatus = "INTERVIEW_COMPLETED"
	CandidateStatusHired              CandidateStatus = "HIRED"
	CandidateStatusRejected           CandidateStatus = "REJECTED"
)

var candidateStatusHumanName = map[CandidateStatus]string{
	CandidateStatusNew:                "New",
	CandidateStatusReachOut:           "Reached out",
	CandidateStatusToInterview:        "To interview",
	CandidateStatusInterviewScheduled: "Interview scheduled",
	CandidateStatusInterviewCompleted: "Interview completed",
	CandidateStatusHired:              "Hired",
	CandidateStatusRejected:           "Rejected",
}

// CandidateStatuses lists the pipeline in its natural forward order.
var CandidateStatuses = []CandidateStatus{
	CandidateStatusNew,
	CandidateStatusReachOut,
	CandidateStatusToInterview,
	CandidateStatusInterviewScheduled,
	CandidateStatusInterviewCompleted,
	CandidateStatusHired,
	CandidateStatusRejected,
}

func ParseCandidateStatus(value string) (CandidateStatus, error) {
	status := CandidateStatus(value)
	if !status.IsValid() {
		return "", errors.Errorf("unknown candidate status %q", value)
	}
	return status, nil
}

func (s CandidateStatus) IsValid() bool {
	_, ok := candidateStatusHumanName[s]
	return ok
}

func (s CandidateStatus) ToHuman() string {
	if human, exist := candidateStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal reports statuses after which the pipeline does not advance.
func (s CandidateStatus) IsTerminal() bool {
	return s == CandidateStatusHired || s == CandidateStatusRejected
}

type CandidateAction string

const (
	ActionReachOut          CandidateAction = "reach_out"
	ActionToInterview       CandidateAction = "to_interview"
	ActionScheduleInterview CandidateAction = "schedule_interview"
	ActionCompleteInterview CandidateAction = "complete_interview"
	ActionHire              CandidateAction = "hire"
	ActionReject            CandidateAction = "reject"
)

var candidateActions = map[CandidateStatus][]CandidateAction{
	CandidateStatusNew:                {ActionReachOut, ActionReject},
	CandidateStatusReachOut:           {ActionToInterview, ActionReject},
	CandidateStatusToInterview:        {ActionScheduleInterview, ActionReject},
	CandidateStatusInterviewScheduled: {ActionCompleteInterview, ActionReject},
	CandidateStatusInterviewCompleted: {ActionHire, ActionReject},
}

// AvailableActions returns the admin buttons shown for the current status.
// The status API itself accepts any status; this only drives the UI.
func (s CandidateStatus) AvailableActions() []CandidateAction {
	actions, ok := candidateActions[s]
	if !ok {
		return []CandidateAction{}
	}
	result := make([]CandidateAction, len(actions))
	copy(result, actions)
	return result
}

var actionTarget = map[CandidateAction]CandidateStatus{
	ActionReachOut:          CandidateStatusReachOut,
	ActionToInterview:       CandidateStatusToInterview,
	ActionScheduleInterview: CandidateStatusInterviewScheduled,
	ActionCompleteInterview: CandidateStatusInterviewCompleted,
	ActionHire:              CandidateStatusHired,
	ActionReject:            CandidateStatusRejected,
}

func (a CandidateAction) TargetStatus() CandidateStatus {
	return actionTarget[a]
}
