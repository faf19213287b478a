// uploadprompts pushes the prompt recordings into the audio bucket the
// call flow plays them from.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/audio"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/upload"
)

func getEnvOrFail(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("%s not set", key)
	}
	return val
}

func main() {
	dir := flag.String("dir", "prompts", "directory holding the prompt wav files")
	flag.Parse()

	region := getEnvOrFail("AWS_REGION")
	bucket := getEnvOrFail("BUCKET_NAME")

	ctx := context.Background()

	uploader, err := upload.NewS3Uploader(ctx, upload.S3Config{
		Region:    region,
		Bucket:    bucket,
		Directory: os.Getenv("S3_DIRECTORY"),
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range audio.AllPrompts() {
		path := filepath.Join(*dir, string(p))
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open %s: %v", path, err)
		}

		err = uploader.Upload(ctx, string(p), "audio/wav", f)
		f.Close()
		if err != nil {
			log.Fatalf("upload %s: %v", p, err)
		}
		log.Infof("uploaded %s to %s", p, bucket)
	}
}
