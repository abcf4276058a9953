package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/textract"
	"github.com/aws/aws-sdk-go/service/textract/textractiface"
)

// TextExtractor returns the text lines found in a document stored in S3
type TextExtractor interface {
	ExtractLines(ctx context.Context, source ObjectLocation) ([]string, error)
}

// this is our Textract implementation
type textractExtractor struct {
	svc textractiface.TextractAPI
}

// NewTextExtractor creates an extractor backed by the supplied Textract client
func NewTextExtractor(svc textractiface.TextractAPI) TextExtractor {
	return &textractExtractor{svc: svc}
}

// Textract reads the document directly from S3, we only pass a reference to it
func (t *textractExtractor) ExtractLines(ctx context.Context, source ObjectLocation) ([]string, error) {

	start := time.Now()
	log.Printf("INFO: detecting text in %s", source)

	out, err := t.svc.DetectDocumentTextWithContext(ctx, &textract.DetectDocumentTextInput{
		Document: &textract.Document{
			S3Object: &textract.S3Object{
				Bucket: aws.String(source.Bucket),
				Name:   aws.String(source.Key),
			},
		},
	})
	if err != nil {
		return nil, &ExtractionError{Location: source, Err: err}
	}

	lines := lineBlocks(out.Blocks)

	duration := time.Since(start)
	log.Printf("INFO: detected %d lines (%d blocks) in %s in %0.2f seconds", len(lines), len(out.Blocks), source, duration.Seconds())
	return lines, nil
}

// keep the LINE blocks in the order the service returned them
func lineBlocks(blocks []*textract.Block) []string {

	lines := make([]string, 0)
	for _, b := range blocks {
		if b == nil || aws.StringValue(b.BlockType) != textract.BlockTypeLine {
			continue
		}
		lines = append(lines, aws.StringValue(b.Text))
	}
	return lines
}

//
// end of file
//
