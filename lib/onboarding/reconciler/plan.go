package reconciler

import (
	"sort"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/taskset"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
)

type DriftReason string

const (
	DriftNone              DriftReason = ""
	DriftEmpty             DriftReason = "empty"
	DriftCountMismatch     DriftReason = "count_mismatch"
	DriftMissingCourseTask DriftReason = "missing_course_task"
	DriftUnexpectedCourse  DriftReason = "unexpected_course_task"
	DriftOrderMismatch     DriftReason = "order_mismatch"
)

// Plan is the converge step for one candidate: what to remove and what to write.
type Plan struct {
	Reason      DriftReason
	DeleteAll   bool
	Create      []taskset.TaskDescriptor
	ExpectCount int
}

func (p Plan) IsNoOp() bool {
	return p.Reason == DriftNone
}

// BuildPlan compares the persisted set against the canonical one.
// Any drift is repaired by replacing the whole set.
func BuildPlan(existing []dbmodels.OnboardingTask, fortyHourCourseCompleted bool) Plan {
	canonical := taskset.CanonicalTasks(fortyHourCourseCompleted)
	plan := Plan{ExpectCount: len(canonical)}

	reason := detectDrift(existing, canonical, taskset.RequiresCourseTask(fortyHourCourseCompleted))
	if reason == DriftNone {
		return plan
	}
	plan.Reason = reason
	plan.DeleteAll = reason != DriftEmpty
	plan.Create = canonical
	return plan
}

func detectDrift(existing []dbmodels.OnboardingTask, canonical []taskset.TaskDescriptor, requiresCourse bool) DriftReason {
	if len(existing) == 0 {
		return DriftEmpty
	}
	if len(existing) != len(canonical) {
		return DriftCountMismatch
	}
	hasCourse := false
	for _, task := range existing {
		if task.TaskType == models.TaskTypeFortyHourCourse {
			hasCourse = true
			break
		}
	}
	if requiresCourse && !hasCourse {
		return DriftMissingCourseTask
	}
	if !requiresCourse && hasCourse {
		return DriftUnexpectedCourse
	}

	sorted := make([]dbmodels.OnboardingTask, len(existing))
	copy(sorted, existing)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].SortOrder < sorted[b].SortOrder
	})
	for idx, task := range sorted {
		if task.SortOrder != canonical[idx].SortOrder || task.TaskType != canonical[idx].TaskType {
			return DriftOrderMismatch
		}
	}
	return DriftNone
}
