// Lambda entry point for the dial-in bridge. The SIP media application
// invokes this function once per call event; the handler runs the event
// through the same call-flow service the HTTP server uses.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/labstack/gommon/log"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/audio"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/callflow"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/conference"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/directory"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/sma"
)

func getEnvOrFail(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("%s not set", key)
	}
	return val
}

func main() {
	table := getEnvOrFail("TABLE_NAME")
	bucket := getEnvOrFail("BUCKET_NAME")

	mediaRegion := os.Getenv("MEDIA_REGION")
	if mediaRegion == "" {
		mediaRegion = "us-east-1"
	}

	// The Lambda runtime supplies AWS_REGION and credentials
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	dir := directory.NewDynamoDirectory(dynamodb.NewFromConfig(cfg), table)
	conf := conference.NewChimeConference(chimesdkmeetings.NewFromConfig(cfg), mediaRegion)
	service := callflow.NewService(audio.NewLibrary(bucket), dir, conf)

	lambda.Start(func(ctx context.Context, event sma.CallEvent) (sma.Response, error) {
		actions, err := service.HandleEvent(ctx, event)
		if err != nil {
			log.Errorf("handle %s event: %v", event.InvocationEventType, err)
			return sma.Response{}, err
		}
		return sma.NewResponse(actions), nil
	})
}
