// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/uoforge/uowire/capture"
	"github.com/uoforge/uowire/gump"
	"github.com/uoforge/uowire/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before anything else.
	for _, argument := range os.Args[1:] {
		if argument == "--version" {
			fmt.Printf("gumpdump %s\n", version.Info())
			return 0
		}
	}

	var (
		encodingName string
		captureMode  bool
		showHelp     bool
	)

	flagSet := pflag.NewFlagSet("gumpdump", pflag.ContinueOnError)
	flagSet.StringVar(&encodingName, "encoding", "plain", `payload encoding: "plain" or "packed"`)
	flagSet.BoolVar(&captureMode, "capture", false, "treat the input as a capture stream")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show this help")
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printHelp(flagSet)
		return 2
	}
	if showHelp {
		printHelp(flagSet)
		return 0
	}

	arguments := flagSet.Args()
	if len(arguments) != 1 {
		fmt.Fprintln(os.Stderr, "error: exactly one input file is required (\"-\" for stdin)")
		printHelp(flagSet)
		return 2
	}

	input, err := readInput(arguments[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if captureMode {
		if err := dumpCapture(os.Stdout, input); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	encoding, err := gump.ParseEncoding(encodingName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printHelp(flagSet)
		return 2
	}
	if err := dumpPayload(os.Stdout, input, encoding); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(path)
}

func decodePayload(input []byte, encoding gump.Encoding) (*gump.Payload, error) {
	if encoding == gump.EncodingPacked {
		return gump.DecodePacked(input)
	}
	return gump.DecodePlain(input)
}

func dumpPayload(out io.Writer, input []byte, encoding gump.Encoding) error {
	payload, err := decodePayload(input, encoding)
	if err != nil {
		return err
	}
	printPayload(out, payload, "")
	return nil
}

// printPayload writes the identity header, the token groups in layout
// grammar, and the string table, each line prefixed with indent.
func printPayload(out io.Writer, payload *gump.Payload, indent string) {
	fmt.Fprintf(out, "%sserial=%d type_id=%08x position=%d,%d encoding=%s entries=%d strings=%d\n",
		indent, payload.Serial, payload.TypeID, payload.X, payload.Y,
		payload.Encoding, payload.EntryCount, len(payload.Strings))
	for _, group := range payload.Groups {
		fmt.Fprintf(out, "%s%s\n", indent, group)
	}
	for index, value := range payload.Strings {
		fmt.Fprintf(out, "%s%4d: %q\n", indent, index, value)
	}
}

func dumpCapture(out io.Writer, input []byte) error {
	records, err := capture.ReadAll(bytes.NewReader(input))
	if err != nil {
		return err
	}
	for index, record := range records {
		printRecord(out, index, record)
	}
	return nil
}

func printRecord(out io.Writer, index int, record capture.Record) {
	timestamp := record.Time.UTC().Format(time.RFC3339Nano)
	switch record.Kind {
	case capture.KindPayload:
		fmt.Fprintf(out, "%4d %s %s conn=%s serial=%d type_id=%08x encoding=%s %d bytes\n",
			index, timestamp, record.Kind, record.Conn, record.Serial,
			record.TypeID, record.Encoding, len(record.Payload))
		encoding, err := gump.ParseEncoding(record.Encoding)
		if err != nil {
			fmt.Fprintf(out, "     payload not decoded: %v\n", err)
			return
		}
		payload, err := decodePayload(record.Payload, encoding)
		if err != nil {
			fmt.Fprintf(out, "     decode failed: %v\n", err)
			return
		}
		printPayload(out, payload, "     ")
	case capture.KindReply:
		fmt.Fprintf(out, "%4d %s %s conn=%s serial=%d type_id=%08x button=%d switches=%v texts=%d\n",
			index, timestamp, record.Kind, record.Conn, record.Serial,
			record.TypeID, record.ButtonID, record.Switches, len(record.Texts))
		for _, text := range record.Texts {
			fmt.Fprintf(out, "     %4d: %q\n", text.EntryID, text.Text)
		}
	case capture.KindClosed:
		fmt.Fprintf(out, "%4d %s %s conn=%s serial=%d type_id=%08x\n",
			index, timestamp, record.Kind, record.Conn, record.Serial, record.TypeID)
	default:
		fmt.Fprintf(out, "%4d %s %s conn=%s\n", index, timestamp, record.Kind, record.Conn)
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: gumpdump [--encoding plain|packed] <payload-file>")
	fmt.Fprintln(os.Stderr, "       gumpdump --capture <capture-file>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Decode a compiled dialog payload, or a CBOR capture stream, into")
	fmt.Fprintln(os.Stderr, "readable text. Pass \"-\" as the input file to read stdin.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Exit codes:")
	fmt.Fprintln(os.Stderr, "  0  success")
	fmt.Fprintln(os.Stderr, "  1  the input failed to decode")
	fmt.Fprintln(os.Stderr, "  2  usage error")
}
