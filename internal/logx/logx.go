package logx

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger writing console output to out.
func NewLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	zerolog.CallerMarshalFunc = shortCaller
	return zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
}

// shortCaller keeps only the file name and pads it for alignment.
func shortCaller(pc uintptr, file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	return fmt.Sprintf("%-24s", fmt.Sprintf("%s:%d", short, line))
}
