package initializers

import (
	"context"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/config"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/fiberlog"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/account"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate"
	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	candidatestage "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-stage"
	xlsexport "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/export/xls"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding"
	reconcileworker "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconcile-worker"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitRedis(ctx)
	InitNotifier(ctx)
	account.NewHandler()
	candidatehistoryhandler.NewHandler()
	reconciler.NewHandler()
	xlsexport.NewHandler()
	candidate.NewHandler()
	candidatestage.NewHandler()
	onboarding.NewHandler(config.Conf.Notifier.CompanyName)
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	reconcileworker.StartWorker(ctx, time.Duration(config.Conf.Onboarding.SweepIntervalInMin)*time.Minute)
}
