package main

import "fmt"

// this describes an object in S3, either the inbound document or the outbound spreadsheet

type ObjectLocation struct {
	Bucket string
	Key    string
}

func (l ObjectLocation) String() string {
	return fmt.Sprintf("s3://%s/%s", l.Bucket, l.Key)
}

// this is what we hand back to the invoking environment

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

//
// end of file
//
