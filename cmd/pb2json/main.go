// Command pb2json decodes a protobuf payload without a schema and
// prints it as JSON keyed by field number. It can also dump the
// payload as protoscope text or as a flat wire-level field listing.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/protocolbuffers/protoscope"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	pb2json "github.com/traceflight/protobuf-2-json"
	"github.com/traceflight/protobuf-2-json/wire"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pb2json", flag.ContinueOnError)
	var (
		inPath     = fs.String("in", "-", "input file, or - for stdin")
		hexInput   = fs.String("hex", "", "hex-encoded payload (overrides -in)")
		encName    = fs.String("enc", "", "bytes encoding: auto, base64, bytearray, stringlossy, hex")
		format     = fs.String("format", "json", "output format: json, protoscope, fields")
		prettyOut  = fs.Bool("pretty", false, "indent JSON output")
		query      = fs.String("query", "", "extract a JSON path from the result")
		maxDepth   = fs.Int("max-depth", 0, "recursion ceiling for nested messages")
		configPath = fs.String("config", "", "TOML config file with defaults")
		quiet      = fs.Bool("quiet", false, "suppress warnings")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	if *quiet {
		logger = logger.Level(zerolog.ErrorLevel)
	}

	opts := defaultOptions()
	if *configPath != "" {
		loaded, err := loadOptionsFile(*configPath)
		if err != nil {
			logger.Error().Err(err).Str("path", *configPath).Msg("cannot load config")
			return 1
		}
		opts = loaded
	}

	// Flags set on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enc":
			enc, err := pb2json.ParseBytesEncoding(*encName)
			if err != nil {
				logger.Error().Err(err).Msg("bad -enc value")
				os.Exit(2)
			}
			opts.encoding = enc
		case "pretty":
			opts.pretty = *prettyOut
		case "max-depth":
			opts.maxDepth = *maxDepth
		}
	})

	data, err := readInput(*inPath, *hexInput)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read input")
		return 1
	}

	parser := &pb2json.Parser{BytesEncoding: opts.encoding, MaxDepth: opts.maxDepth}

	switch *format {
	case "protoscope":
		fmt.Print(protoscope.Write(data, protoscope.WriterOptions{}))
		return 0

	case "fields":
		printFields(parser.ParseOnce(data))
		return 0

	case "json":
		warnMalformed(logger, parser.ParseOnce(data))

		obj, err := parser.Parse(data)
		if err != nil {
			logger.Error().Err(err).Int("bytes", len(data)).Msg("rejected")
			return 1
		}

		out, err := obj.MarshalJSON()
		if err != nil {
			logger.Error().Err(err).Msg("marshal failed")
			return 1
		}
		if *query != "" {
			res := gjson.GetBytes(out, *query)
			if !res.Exists() {
				logger.Error().Str("query", *query).Msg("no such path in result")
				return 1
			}
			out = []byte(res.Raw)
		}
		if opts.pretty {
			out = pretty.Pretty(out)
		} else {
			out = append(out, '\n')
		}
		os.Stdout.Write(out)
		return 0

	default:
		logger.Error().Str("format", *format).Msg("unknown output format")
		return 2
	}
}

func readInput(path, hexInput string) ([]byte, error) {
	if hexInput != "" {
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, hexInput)
		return hex.DecodeString(clean)
	}

	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// warnMalformed surfaces wire-level oddities that the JSON projection
// silently tolerates.
func warnMalformed(logger zerolog.Logger, msg wire.Message) {
	if msg.Garbage != nil {
		logger.Warn().Int("bytes", len(msg.Garbage)).Msg("trailing garbage after last field")
	}
	if n := len(msg.Fields); n > 0 {
		switch last := msg.Fields[n-1].Value; last.Kind {
		case wire.ValueInvalid:
			logger.Warn().
				Uint64("field", msg.Fields[n-1].Number).
				Uint8("wire_type", uint8(last.Wire)).
				Msg("field with unrecognized wire type consumed the remaining bytes")
		case wire.ValueIncomplete:
			logger.Warn().
				Uint64("field", msg.Fields[n-1].Number).
				Msg("truncated field value")
		}
	}
}

func printFields(msg wire.Message) {
	for _, f := range msg.Fields {
		switch f.Value.Kind {
		case wire.ValueVarint:
			fmt.Printf("%d\t%s\t%d\n", f.Number, f.Value.Kind, f.Value.Varint)
		case wire.ValueFixed64:
			fmt.Printf("%d\t%s\t%d\n", f.Number, f.Value.Kind, f.Value.Fixed64)
		case wire.ValueFixed32:
			fmt.Printf("%d\t%s\t%d\n", f.Number, f.Value.Kind, f.Value.Fixed32)
		default:
			fmt.Printf("%d\t%s\t%x\n", f.Number, f.Value.Kind, f.Value.Bytes)
		}
	}
	if msg.Garbage != nil {
		fmt.Printf("-\tgarbage\t%x\n", msg.Garbage)
	}
}
