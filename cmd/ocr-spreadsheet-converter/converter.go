package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Converter turns a document in S3 into a spreadsheet of its text lines, stored alongside it
type Converter struct {
	extractor TextExtractor
	publisher ResultPublisher
	sheetName string
	tempDir   string
}

// NewConverter creates a converter from its collaborators
func NewConverter(cfg ServiceConfig, extractor TextExtractor, publisher ResultPublisher) *Converter {
	return &Converter{
		extractor: extractor,
		publisher: publisher,
		sheetName: cfg.SheetName,
		tempDir:   cfg.TempDir,
	}
}

// HandleEvent is the Lambda entry point, it converts the first object named in the S3 notification
func (c *Converter) HandleEvent(ctx context.Context, payload json.RawMessage) (*Response, error) {

	records, err := decodeS3Event(payload)
	if err != nil {
		log.Printf("ERROR: %s", err.Error())
		return nil, err
	}

	source, err := firstObject(records)
	if err != nil {
		log.Printf("ERROR: %s", err.Error())
		return nil, err
	}

	return c.Convert(ctx, source)
}

// Convert runs the pipeline for a single document. Any failure ends the conversion and
// nothing is uploaded unless every earlier step succeeded
func (c *Converter) Convert(ctx context.Context, source ObjectLocation) (*Response, error) {

	start := time.Now()
	log.Printf("INFO: processing %s", source)

	lines, err := c.extractor.ExtractLines(ctx, source)
	if err != nil {
		log.Printf("ERROR: %s", err.Error())
		return nil, err
	}

	target := ObjectLocation{Bucket: source.Bucket, Key: outputKey(source.Key)}
	if err = c.stageAndPublish(ctx, lines, target); err != nil {
		log.Printf("ERROR: %s", err.Error())
		return nil, err
	}

	duration := time.Since(start)
	log.Printf("INFO: done processing %s, uploaded %s in %0.2f seconds", source, target, duration.Seconds())

	return &Response{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf("Processed %s, extracted %d lines.", source.Key, len(lines)),
	}, nil
}

// the staging file is removed on every path out of here
func (c *Converter) stageAndPublish(ctx context.Context, lines []string, target ObjectLocation) error {

	tmp, err := os.CreateTemp(c.tempDir, "*"+spreadsheetExtension)
	if err != nil {
		return &PersistenceError{Path: c.tempDir, Err: err}
	}
	localName := tmp.Name()
	defer removeStagingFile(localName)

	if err = tmp.Close(); err != nil {
		return &PersistenceError{Path: localName, Err: err}
	}

	if err = writeSpreadsheet(lines, c.sheetName, localName); err != nil {
		return err
	}

	return c.publisher.Publish(ctx, localName, target)
}

func removeStagingFile(filename string) {

	log.Printf("INFO: removing %s", filename)
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: unable to remove %s (%s)", filename, err.Error())
	}
}

//
// end of file
//
