package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	pb2json "github.com/traceflight/protobuf-2-json"
)

type options struct {
	encoding pb2json.BytesEncoding
	pretty   bool
	maxDepth int
}

func defaultOptions() options {
	return options{encoding: pb2json.EncodingAuto}
}

type fileConfig struct {
	Encoding string `toml:"encoding"`
	Pretty   bool   `toml:"pretty"`
	MaxDepth int    `toml:"max_depth"`
}

func loadOptionsFile(path string) (options, error) {
	opts := defaultOptions()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return options{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("encoding") {
		enc, err := pb2json.ParseBytesEncoding(raw.Encoding)
		if err != nil {
			return options{}, fmt.Errorf("parse encoding: %w", err)
		}
		opts.encoding = enc
	}

	if meta.IsDefined("pretty") {
		opts.pretty = raw.Pretty
	}

	if meta.IsDefined("max_depth") {
		if raw.MaxDepth < 0 {
			return options{}, fmt.Errorf("max_depth must be non-negative, got %d", raw.MaxDepth)
		}
		opts.maxDepth = raw.MaxDepth
	}

	return opts, nil
}
