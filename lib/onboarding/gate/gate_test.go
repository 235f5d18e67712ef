package gate

import (
	"testing"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run(`tasks pending check`, func(t *testing.T) {
		require.Equal(t, models.GateOnboarding, Resolve(false, false))
		require.Equal(t, models.GateOnboarding, Resolve(false, true))
	})
	t.Run(`schedule pending check`, func(t *testing.T) {
		require.Equal(t, models.GateScheduleSetup, Resolve(true, false))
	})
	t.Run(`all done check`, func(t *testing.T) {
		require.Equal(t, models.GateMainDashboard, Resolve(true, true))
	})
}
