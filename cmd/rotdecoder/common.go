package main

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamingfast/rotdecoder"
	"github.com/streamingfast/rotdecoder/render"
	"go.uber.org/zap"
)

func getRenderer() (rotdecoder.Renderer, error) {
	scheme := viper.GetString("global-renderer")
	zlog.Debug("setting up renderer", zap.String("scheme", scheme))

	r, err := render.New(scheme)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return r, nil
}

func getDecodeOptions() []rotdecoder.Option {
	opts := []rotdecoder.Option{rotdecoder.WithLogger(zlog)}
	if viper.GetBool("global-strict") {
		opts = append(opts, rotdecoder.WithStrict())
	}
	return opts
}
