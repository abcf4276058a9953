package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/aws/aws-sdk-go/service/textract"
	"github.com/aws/aws-sdk-go/service/textract/textractiface"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeTextract answers DetectDocumentText from a table of documents keyed by object key
type fakeTextract struct {
	textractiface.TextractAPI
	documents map[string][]*textract.Block
	requests  []*textract.DetectDocumentTextInput
}

func (f *fakeTextract) DetectDocumentTextWithContext(ctx aws.Context, in *textract.DetectDocumentTextInput, opts ...request.Option) (*textract.DetectDocumentTextOutput, error) {
	f.requests = append(f.requests, in)
	blocks, found := f.documents[aws.StringValue(in.Document.S3Object.Name)]
	if found == false {
		return nil, awserr.New(textract.ErrCodeInvalidS3ObjectException, "Unable to get object metadata from S3", nil)
	}
	return &textract.DetectDocumentTextOutput{Blocks: blocks}, nil
}

// fakeUploader keeps every uploaded object in memory
type fakeUploader struct {
	s3manageriface.UploaderAPI
	objects map[string][]byte
	err     error
	// the staging file as seen during the upload
	stagedNames []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (f *fakeUploader) UploadWithContext(ctx aws.Context, in *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	if file, ok := in.Body.(*os.File); ok {
		f.stagedNames = append(f.stagedNames, file.Name())
	}
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s/%s", aws.StringValue(in.Bucket), aws.StringValue(in.Key))
	f.objects[name] = body
	return &s3manager.UploadOutput{Location: "s3://" + name}, nil
}

func block(blockType string, text string) *textract.Block {
	b := &textract.Block{BlockType: aws.String(blockType)}
	if len(text) != 0 {
		b.Text = aws.String(text)
	}
	return b
}

// the first column of every row in the named sheet
func sheetColumn(t *testing.T, workbook []byte, sheetName string) []string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	column := make([]string, 0, len(rows))
	for _, r := range rows {
		require.Len(t, r, 1)
		column = append(column, r[0])
	}
	return column
}

func testConfig(t *testing.T) ServiceConfig {
	return ServiceConfig{Mode: modeLambda, TempDir: t.TempDir(), SheetName: "ExtractedText"}
}

func s3Event(locations ...ObjectLocation) []byte {
	records := ""
	for ix, l := range locations {
		if ix != 0 {
			records += ","
		}
		records += fmt.Sprintf(`{"eventSource":"aws:s3","eventName":"ObjectCreated:Put","s3":{"bucket":{"name":%q},"object":{"key":%q,"size":1024}}}`, l.Bucket, l.Key)
	}
	return []byte(`{"Records":[` + records + `]}`)
}

//
// end of file
//
