package main

import (
	"context"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/studentjobsgroningen/site-services/api/internal/config"
	"github.com/studentjobsgroningen/site-services/api/internal/infrastructure/s3"
	"github.com/studentjobsgroningen/site-services/api/internal/infrastructure/ses"
	"github.com/studentjobsgroningen/site-services/api/internal/logger"
	"github.com/studentjobsgroningen/site-services/api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		zlog.Fatal("failed to load AWS config", zap.Error(err))
	}

	logos := s3.NewLogoStore(awsCfg, cfg.LogoBucket, cfg.MediaBaseURL)
	mailer := ses.NewMailer(awsCfg, cfg.EmailFromAddress, cfg.StaffAlertAddress)

	app := server.New(cfg, zlog, client, logos, mailer)
	if err := app.Run(); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
