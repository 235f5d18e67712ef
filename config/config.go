package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr     string `default:"" env:"APP_HOST"`
		Port           int    `default:"8080"  env:"APP_PORT"`
		SwaggerEnabled *bool  `default:"false" env:"APP_SWAGGER_ENABLED"`
		ErrNotifyAddr  string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
		BodyLimitMB    int    `default:"10" env:"APP_BODY_LIMIT_MB"`
	}
	Log struct {
		Level         string `default:"info" env:"LOG_LEVEL"`
		RequestLevel  string `default:"debug" env:"LOG_REQUEST_LEVEL"`
		RequestBodies *bool  `default:"false" env:"LOG_REQUEST_BODIES"` // bodies carry candidate contact data
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"riseandshine" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
	Notifier struct {
		EmailProvider string `default:"smtp" env:"NOTIFIER_EMAIL_PROVIDER"` // smtp or ses
		SmsEnabled    *bool  `default:"false" env:"NOTIFIER_SMS_ENABLED"`
		From          string `default:"" env:"NOTIFIER_FROM"`
		CompanyName   string `default:"Rise and Shine" env:"NOTIFIER_COMPANY_NAME"`
		PortalLink    string `default:"http://localhost:3000/login" env:"NOTIFIER_PORTAL_LINK"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	AWS struct {
		Region string `default:"us-east-1" env:"AWS_REGION"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"rbt-onboarding" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		LinkTTLInSec    int    `default:"900" env:"S3_LINK_TTL_IN_SEC"`
	}
	Onboarding struct {
		SweepIntervalInMin int `default:"0" env:"ONBOARDING_SWEEP_INTERVAL_IN_MIN"` // opt-in background sweep, 0 keeps reconciliation pull-based
	}
	Redis struct {
		Address  string `default:"" env:"REDIS_ADDRESS"` // empty disables redis
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not loaded, using process environment")
	}
	conf, err := load(configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

func load(files ...string) (*Configuration, error) {
	conf := new(Configuration)
	if err := configor.New(&configor.Config{}).Load(conf, files...); err != nil {
		return nil, err
	}
	return conf, nil
}
