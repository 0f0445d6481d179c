package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
)

// submission is the input shape: the intake answers plus any follow-up
// answers already collected.
type submission struct {
	Intake    intake.IntakeForm      `json:"intake"`
	FollowUps intake.FollowUpAnswers `json:"followUps"`
}

func main() {
	inputPath := flag.String("input", "", "Path to submission JSON (defaults to stdin)")
	outputPath := flag.String("output", "", "Path to write the report markdown (defaults to stdout)")
	jsonOutputPath := flag.String("json-output", "", "Optional path to write the full result envelope JSON")
	flag.Parse()

	in, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var sub submission
	if err := json.Unmarshal(in, &sub); err != nil {
		log.Fatalf("decode input JSON: %v", err)
	}

	if errs := intake.ValidateIntake(sub.Intake); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("invalid intake: %s: %s", e.Field, e.Message)
		}
		os.Exit(1)
	}
	if errs := intake.ValidateFollowUps(sub.FollowUps); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("invalid follow-ups: %s: %s", e.Field, e.Message)
		}
		os.Exit(1)
	}

	result := pipeline.New(pipeline.DefaultConfig()).Run(sub.Intake, sub.FollowUps)
	if result.MissingInfoWarning != "" {
		log.Printf("note: %s", result.MissingInfoWarning)
	}

	if err := writeMarkdown(*outputPath, result.ReportMarkdown); err != nil {
		log.Fatalf("write markdown: %v", err)
	}
	if *jsonOutputPath != "" {
		if err := writeResultJSON(*jsonOutputPath, result); err != nil {
			log.Fatalf("write json output: %v", err)
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeMarkdown(outputPath, markdown string) error {
	if outputPath == "" {
		_, err := fmt.Print(markdown)
		return err
	}
	return os.WriteFile(outputPath, []byte(markdown), 0o644)
}

func writeResultJSON(path string, result pipeline.Result) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
