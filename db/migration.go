package db

import (
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "failed to migrate Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.OnboardingTask{}); err != nil {
		return errors.Wrap(err, "failed to migrate OnboardingTask")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateHistory{}); err != nil {
		return errors.Wrap(err, "failed to migrate CandidateHistory")
	}
	log.Info("migrations finished")
	return nil
}
