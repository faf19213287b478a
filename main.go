package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/audio"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/callflow"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/conference"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/directory"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/http/rest"
)

func getEnvOrFail(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("%s not set", key)
	}
	return val
}

func main() {
	// Get env variables
	port := getEnvOrFail("APP_PORT")
	awsRegion := getEnvOrFail("AWS_REGION")
	table := getEnvOrFail("TABLE_NAME")
	bucket := getEnvOrFail("BUCKET_NAME")
	logLevel := os.Getenv("LOG_LEVEL")

	// Meetings are pinned to one media region regardless of where the
	// bridge runs
	mediaRegion := os.Getenv("MEDIA_REGION")
	if mediaRegion == "" {
		mediaRegion = "us-east-1"
	}

	// Get log verbosity
	var verbosity log.Lvl
	switch strings.ToLower(logLevel) {
	case "debug":
		verbosity = log.DEBUG
	case "info":
		verbosity = log.INFO
	case "warn":
		verbosity = log.WARN
	case "error":
		fallthrough
	default:
		verbosity = log.ERROR
	}
	log.SetLevel(verbosity)
	log.SetHeader("(${short_file}:${line}) ${time_rfc3339} ${level}: ")

	ctx := context.Background()

	// Load AWS config
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsRegion))
	if err != nil {
		log.Fatal(err)
	}

	// Initialise gateways
	dir := directory.NewDynamoDirectory(dynamodb.NewFromConfig(cfg), table)
	conf := conference.NewChimeConference(chimesdkmeetings.NewFromConfig(cfg), mediaRegion)

	// Check that the prompt recordings are in place
	prompts := audio.NewLibrary(bucket)
	prompts.Probe(ctx, s3.NewFromConfig(cfg))

	// Initialise the call-flow service and controller
	service := callflow.NewService(prompts, dir, conf)
	controller := rest.NewCallControlController(service, dir, conf)

	// Initialise server
	e := echo.New()

	// Attach middlewares
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "(${host}) ${time_rfc3339} ${level}: ${method} ${uri} ${status} ${error}\n",
	}))

	// Attach handlers
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the dial-in bridge")
	})
	e.GET("/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Attach call-control handlers
	e.POST("/call-events", controller.HandleCallEvent)
	e.POST("/meetings/:meetingID/mute", controller.MuteMeeting)
	e.POST("/meetings/:meetingID/unmute", controller.UnmuteMeeting)

	// Start server
	e.Logger.Fatal(e.Start(":" + port))
}
