package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/textract"
	"github.com/uvalib/virgo4-sqs-sdk/awssqs"
)

//
// main entry point
//
func main() {

	log.Printf("===> %s service staring up (version: %s) <===", os.Args[0], Version())

	// Get config params and use them to init service context. Any issues are fatal
	cfg := LoadConfiguration()

	// one session shared by all the AWS clients
	sess, err := session.NewSession()
	fatalIfError(err)

	converter := NewConverter(*cfg,
		NewTextExtractor(textract.New(sess)),
		NewResultPublisher(s3manager.NewUploader(sess)))

	if cfg.Mode == modeLambda {
		lambda.Start(converter.HandleEvent)
		return
	}

	// load our AWS sqs helper object
	aws, err := awssqs.NewAwsSqs(awssqs.AwsSqsConfig{})
	fatalIfError(err)

	// get the queue handle from the queue name
	inQueueHandle, err := aws.QueueHandle(cfg.InQueueName)
	fatalIfError(err)

	runQueue(context.Background(), *cfg, aws, inQueueHandle, converter)
}

func fatalIfError(err error) {
	if err != nil {
		log.Fatalf("FATAL ERROR: %s", err.Error())
	}
}

//
// end of file
//
