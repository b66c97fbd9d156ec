package xlog

import (
	"go.uber.org/zap/zapcore"
)

var _ XLogCore = (*consoleCore)(nil)

// consoleCore is the fallback XLogCore: no aggregator, just an encoder and
// a writer. It is what every Logger gets unless a caller installs a
// different XLogCore, which is why rbtreemap.Config.Logger's mutation
// traces (see rbtreemap/trace.go) show up on stdout in the test suite
// without any extra wiring.
type consoleCore struct{}

func (cc *consoleCore) Build(
	lvlEnabler zapcore.LevelEnabler,
	encoder LogEncoderType,
	writer LogOutWriterType,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) (core zapcore.Core, err error) {
	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    tsEnc,
		CallerKey:     "mutationAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "op",
		NameKey:       "pkg",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	ws := getOutWriterByType(writer)
	core = zapcore.NewCore(getEncoderByType(encoder)(config), ws, lvlEnabler)
	return core, nil
}
