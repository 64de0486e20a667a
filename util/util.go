package util

import (
	"fmt"
	"os"
)

// Assert exits the program with an error message when err is not nil. An
// optional printf-style prefix is prepended to the error text.
func Assert(err error, prefix ...interface{}) {
	if err == nil {
		return
	}
	if len(prefix) > 0 {
		format := prefix[0].(string)
		Fatalf("%s: %s", fmt.Sprintf(format, prefix[1:]...), err)
	}
	Fatalf("%s", err)
}

func Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}

func Warnf(format string, v ...interface{}) {
	if FlagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

// Verbosef emits progress chatter to stderr. It is silent unless the
// "verbose" flag is in use and set.
func Verbosef(format string, v ...interface{}) {
	if !FlagVerbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}
