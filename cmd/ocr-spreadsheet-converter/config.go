package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
)

var modeLambda = "lambda"
var modeQueue = "queue"

// ServiceConfig defines all of the service configuration parameters
type ServiceConfig struct {
	Mode        string
	InQueueName string
	PollTimeOut int64
	TempDir     string
	SheetName   string
}

// LoadConfiguration will load the service configuration from env/cmdline
// and return a pointer to it. Any failures are fatal.
func LoadConfiguration() *ServiceConfig {

	log.Printf("Loading configuration...")
	cfg, err := parseConfiguration(os.Args[1:])
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	log.Printf("[CONFIG] Mode                 = [%s]", cfg.Mode)
	log.Printf("[CONFIG] InQueueName          = [%s]", cfg.InQueueName)
	log.Printf("[CONFIG] PollTimeOut          = [%d]", cfg.PollTimeOut)
	log.Printf("[CONFIG] TempDir              = [%s]", cfg.TempDir)
	log.Printf("[CONFIG] SheetName            = [%s]", cfg.SheetName)

	return cfg
}

// command line values win, the environment supplies the defaults (Lambda passes no arguments)
func parseConfiguration(args []string) (*ServiceConfig, error) {

	var cfg ServiceConfig
	fs := flag.NewFlagSet("ocr-spreadsheet-converter", flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", envWithDefault("CONVERTER_MODE", modeLambda), "Run mode (lambda or queue)")
	fs.StringVar(&cfg.InQueueName, "inqueue", envWithDefault("CONVERTER_IN_QUEUE", ""), "Inbound notification queue name (queue mode)")
	fs.Int64Var(&cfg.PollTimeOut, "pollwait", envIntWithDefault("CONVERTER_POLL_WAIT", 15), "Inbound queue polling time (seconds)")
	fs.StringVar(&cfg.TempDir, "tmpdir", envWithDefault("CONVERTER_TMP_DIR", os.TempDir()), "Spreadsheet staging directory")
	fs.StringVar(&cfg.SheetName, "sheet", envWithDefault("CONVERTER_SHEET_NAME", "ExtractedText"), "Spreadsheet sheet name")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Mode != modeLambda && cfg.Mode != modeQueue {
		return nil, fmt.Errorf("Mode must be %s or %s (got %s)", modeLambda, modeQueue, cfg.Mode)
	}

	if cfg.Mode == modeQueue && len(cfg.InQueueName) == 0 {
		return nil, fmt.Errorf("InQueueName cannot be blank in %s mode", modeQueue)
	}

	if cfg.PollTimeOut < 0 {
		return nil, fmt.Errorf("PollTimeOut cannot be negative")
	}

	if len(cfg.SheetName) == 0 {
		return nil, fmt.Errorf("SheetName cannot be blank")
	}

	return &cfg, nil
}

func envWithDefault(env string, defaultValue string) string {
	val, set := os.LookupEnv(env)
	if set == false || len(val) == 0 {
		return defaultValue
	}
	return val
}

func envIntWithDefault(env string, defaultValue int64) int64 {
	val, err := strconv.ParseInt(envWithDefault(env, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return val
}

//
// end of file
//
