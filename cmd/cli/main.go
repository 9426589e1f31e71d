package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/speakwise/intro-scorer/internal/usecase/scoring"
	"github.com/speakwise/intro-scorer/pkg/sentiment"
)

func main() {
	file := flag.String("file", "", "path to a transcript text file (default: read stdin)")
	duration := flag.Float64("duration", 0, "spoken duration in minutes (0 = not provided)")
	flag.Parse()

	var raw []byte
	var err error
	if *file != "" {
		raw, err = os.ReadFile(*file)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("failed to read transcript: %v", err)
	}

	svc := scoring.NewService(scoring.DefaultRubric(), sentiment.NewVaderAnalyzer(), nil)
	report, err := svc.Score(context.Background(), string(raw), *duration)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Total: %d/100 (%s)\n", report.Total, report.Grade)
	fmt.Printf("Words: %d  Sentences: %d\n\n", report.WordCount, report.SentenceCount)
	for _, c := range report.Criteria {
		fmt.Printf("%-24s %5.1f/%-3d %s\n", c.Criterion.DisplayName(), c.Points, c.Weight, c.Feedback)
	}
}
