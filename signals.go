package palette

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for palette events.
var (
	SignalEncodeComplete = capitan.NewSignal("palette.encode.complete", "Value encoded into a node")
	SignalDecodeComplete = capitan.NewSignal("palette.decode.complete", "Value decoded from a node")
	SignalParseComplete  = capitan.NewSignal("palette.parse.complete", "Document parsed into a node")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeySource   = capitan.NewStringKey("source")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitParseComplete emits an event when a parse entry point finishes.
// size is the input length when known, -1 otherwise.
func emitParseComplete(ctx context.Context, source string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySource.Field(source),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalParseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalParseComplete, fields...)
	}
}
