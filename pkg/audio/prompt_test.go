package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func TestSourcePointsAtBucketObject(t *testing.T) {
	lib := NewLibrary("audio-bucket")

	src := lib.Source(PromptWelcome)
	require.Equal(t, "S3", src.Type)
	require.Equal(t, "audio-bucket", src.BucketName)
	require.Equal(t, "welcome_message.wav", src.Key)
}

func TestAllPromptsCoversCallFlow(t *testing.T) {
	prompts := AllPrompts()
	require.Len(t, prompts, 5)
	require.Contains(t, prompts, PromptWelcome)
	require.Contains(t, prompts, PromptMeetingPin)
	require.Contains(t, prompts, PromptMeetingJoined)
	require.Contains(t, prompts, PromptMuted)
	require.Contains(t, prompts, PromptUnmuted)
}

type fakeHead struct {
	keys []string
	err  error
}

func (f *fakeHead) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.keys = append(f.keys, *params.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestProbeChecksEveryPrompt(t *testing.T) {
	fake := &fakeHead{}
	NewLibrary("audio-bucket").Probe(context.TODO(), fake)
	require.Len(t, fake.keys, len(AllPrompts()))
}

func TestProbeSurvivesMissingPrompt(t *testing.T) {
	// A missing prompt is logged, not fatal
	fake := &fakeHead{err: errors.New("NotFound")}
	NewLibrary("audio-bucket").Probe(context.TODO(), fake)
	require.Len(t, fake.keys, len(AllPrompts()))
}
