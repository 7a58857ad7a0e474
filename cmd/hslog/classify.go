package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hslog/hslog-go/pkg/hslog"
)

var classifySkipUnknown bool

var classifyCmd = &cobra.Command{
	Use:   "classify [lines...]",
	Short: "Classify log lines without tracking a match",
	Long: `Run the line classifier on each argument, or on every line read from
standard input when no arguments are given, and print one JSON object
per line.

Classification is stateless: no roster is kept, so match start and
match over are never reported here. Use 'hslog tail' for events.

Examples:
  hslog classify '[Power] GameState.DebugPrintPower() - TAG_CHANGE Entity=Player1 tag=PLAYSTATE value=WON'

  # Show only recognized lines of a saved log
  hslog classify --skip-unknown < output_log.txt`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifySkipUnknown, "skip-unknown", false,
		"Do not print lines that match no pattern")
}

func runClassify(cmd *cobra.Command, args []string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)

	if len(args) > 0 {
		for _, line := range args {
			if err := writeClassification(enc, line, classifySkipUnknown); err != nil {
				return err
			}
		}
		return nil
	}
	return classifyReader(cmd.InOrStdin(), enc, classifySkipUnknown)
}

func classifyReader(r io.Reader, enc *json.Encoder, skipUnknown bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := writeClassification(enc, scanner.Text(), skipUnknown); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// classifiedLine is the JSON shape printed for each input line.
type classifiedLine struct {
	Line string `json:"line"`
	hslog.Classification
}

func writeClassification(enc *json.Encoder, line string, skipUnknown bool) error {
	c := hslog.Classify(line)
	if skipUnknown && c.Kind == hslog.LineUnknown {
		return nil
	}
	if err := enc.Encode(classifiedLine{Line: line, Classification: c}); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}
