// Package audio maps the bridge's spoken prompts to their objects in the
// audio bucket.
package audio

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/gommon/log"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/sma"
)

// Prompt is the object key of one prompt recording.
type Prompt string

const (
	PromptWelcome       Prompt = "welcome_message.wav"
	PromptMeetingPin    Prompt = "meeting_pin.wav"
	PromptMeetingJoined Prompt = "meeting_joined.wav"
	PromptMuted         Prompt = "muted.wav"
	PromptUnmuted       Prompt = "unmuted.wav"
)

// AllPrompts lists every prompt the call flow can play.
func AllPrompts() []Prompt {
	return []Prompt{
		PromptWelcome,
		PromptMeetingPin,
		PromptMeetingJoined,
		PromptMuted,
		PromptUnmuted,
	}
}

// Library resolves prompts against a single audio bucket.
type Library struct {
	bucket string
}

func NewLibrary(bucket string) Library {
	return Library{bucket: bucket}
}

func (l Library) Bucket() string {
	return l.bucket
}

// Source builds the audio source the platform fetches the prompt from.
func (l Library) Source(p Prompt) sma.AudioSource {
	return sma.AudioSource{
		Type:       "S3",
		BucketName: l.bucket,
		Key:        string(p),
	}
}

// HeadObjectAPI is the slice of the S3 client used by Probe.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Probe checks that every prompt object exists. A missing prompt does not
// stop the bridge; the platform would simply fail the PlayAudio later, so
// surface it at startup where an operator can see it.
func (l Library) Probe(ctx context.Context, client HeadObjectAPI) {
	for _, p := range AllPrompts() {
		_, err := client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(l.bucket),
			Key:    aws.String(string(p)),
		})
		if err != nil {
			log.Warnf("prompt %s not readable in bucket %s: %v", p, l.bucket, err)
		}
	}
}
