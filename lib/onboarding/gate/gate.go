package gate

import "github.com/Aaron071982/riseandshineHRM-final-sub000/models"

// Resolve picks which dashboard a hired user lands on.
// Onboarding must be finished before schedule setup is offered.
func Resolve(allTasksCompleted, scheduleCompleted bool) models.GateState {
	if !allTasksCompleted {
		return models.GateOnboarding
	}
	if !scheduleCompleted {
		return models.GateScheduleSetup
	}
	return models.GateMainDashboard
}
