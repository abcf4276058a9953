package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/uvalib/virgo4-sqs-sdk/awssqs"
)

//
// poll the inbound queue for S3 notifications and convert every object they name. A message
// is only deleted once it has been handled; failed conversions are left for redelivery
//
func runQueue(ctx context.Context, config ServiceConfig, aws awssqs.AWS_SQS, inQueueHandle awssqs.QueueHandle, converter *Converter) {

	for {

		messages, err := aws.BatchMessageGet(inQueueHandle, 1, time.Duration(config.PollTimeOut)*time.Second)
		fatalIfError(err)

		// did we get anything to process
		if len(messages) == 0 {
			log.Printf("INFO: no notifications...")
			continue
		}

		for _, m := range messages {

			log.Printf("INFO: received new notification")
			if processNotification(ctx, converter, []byte(m.Payload)) == false {
				log.Printf("WARNING: notification not fully processed, leaving it for redelivery")
				continue
			}

			opStatus, err := aws.BatchMessageDelete(inQueueHandle, []awssqs.Message{m})
			if err != nil {
				log.Printf("ERROR: deleting notification (%s)", err.Error())
			}

			// check the operation results
			for ix, op := range opStatus {
				if op == false {
					log.Printf("ERROR: message %d failed to delete", ix)
				}
			}
		}
	}
}

//
// convert each object named in the notification and report whether the notification is done with.
// A notification that cannot be decoded is done with, redelivering it will not help
//
func processNotification(ctx context.Context, converter *Converter, payload []byte) bool {

	records, err := decodeS3Event(payload)
	if err != nil {
		log.Printf("ERROR: %s, ignoring notification", err.Error())
		return true
	}

	ok := true
	for _, r := range records {
		source, err := locationOf(r)
		if err != nil {
			log.Printf("ERROR: %s, ignoring record", err.Error())
			continue
		}
		if _, err = converter.Convert(ctx, source); err != nil {
			ok = false
		}
	}
	return ok
}

//
// turn an S3 notification into a list of one or more new objects
//
func decodeS3Event(payload []byte) ([]events.S3EventRecord, error) {

	event := events.S3Event{}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, &MalformedEventError{Err: err}
	}

	if len(event.Records) == 0 {
		return nil, &MalformedEventError{Err: ErrNoRecords}
	}
	return event.Records, nil
}

// only one object is converted per invocation
func firstObject(records []events.S3EventRecord) (ObjectLocation, error) {

	if len(records) == 0 {
		return ObjectLocation{}, &MalformedEventError{Err: ErrNoRecords}
	}

	if len(records) > 1 {
		log.Printf("WARNING: notification contains %d records, only the first is processed", len(records))
	}
	return locationOf(records[0])
}

func locationOf(record events.S3EventRecord) (ObjectLocation, error) {

	location := ObjectLocation{
		Bucket: record.S3.Bucket.Name,
		Key:    record.S3.Object.Key,
	}

	if len(location.Bucket) == 0 || len(location.Key) == 0 {
		return ObjectLocation{}, &MalformedEventError{Err: ErrNoLocation}
	}
	return location, nil
}

//
// end of file
//
