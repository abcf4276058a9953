package main

import (
	"context"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

var spreadsheetExtension = ".xlsx"
var spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ResultPublisher stores a local file in S3
type ResultPublisher interface {
	Publish(ctx context.Context, localName string, target ObjectLocation) error
}

// this is our S3 implementation
type s3Publisher struct {
	uploader s3manageriface.UploaderAPI
}

// NewResultPublisher creates a publisher backed by the supplied S3 uploader
func NewResultPublisher(uploader s3manageriface.UploaderAPI) ResultPublisher {
	return &s3Publisher{uploader: uploader}
}

// any existing object at the target is overwritten
func (p *s3Publisher) Publish(ctx context.Context, localName string, target ObjectLocation) error {

	file, err := os.Open(localName)
	if err != nil {
		return &PublishError{Location: target, Err: err}
	}
	defer file.Close()

	start := time.Now()
	log.Printf("INFO: uploading %s to %s", localName, target)

	_, err = p.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(target.Bucket),
		Key:         aws.String(target.Key),
		Body:        file,
		ContentType: aws.String(spreadsheetContentType),
	})
	if err != nil {
		return &PublishError{Location: target, Err: err}
	}

	duration := time.Since(start)
	log.Printf("INFO: upload of %s complete in %0.2f seconds", target, duration.Seconds())
	return nil
}

//
// replace the extension of the final path segment with the spreadsheet extension, or append it
// if there is none. Dots in the directory part of the key are left alone.
//
func outputKey(key string) string {

	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + spreadsheetExtension
}

//
// end of file
//
