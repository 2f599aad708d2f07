package logger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	LOG_ENABLE          = "SSUBMIT_LOGLEVEL"
	LOG_PATH            = "SSUBMIT_LOGPATH"
	LOG_TIMEOUT         = "SSUBMIT_TIMEOUT"
	LOG_DEFAULT_TIMEOUT = 24
	DEBUG_LOGGING       = 10
	INFO_LOGGING        = 20
	WARNING_LOGGING     = 30
	ERROR_LOGGING       = 40
)

var (
	Log *log.Logger

	// defaultLevel applies when SSUBMIT_LOGLEVEL is unset; --quiet
	// raises it to errors only.
	defaultLevel = INFO_LOGGING
)

func init() {
	logPath := "/tmp/"
	if env := os.Getenv(LOG_PATH); len(env) > 0 {
		logPath = env
	}
	timeout := LOG_DEFAULT_TIMEOUT
	if env := os.Getenv(LOG_TIMEOUT); len(env) > 0 {
		if t, err := strconv.Atoi(env); err == nil {
			timeout = t
		}
	}
	logfile := logPath + "ssubmit.log"
	if f, err := os.Open(logfile); err == nil {
		scanner := bufio.NewScanner(f)
		scanner.Scan()
		f.Close()
		if tag, terr := time.Parse(time.RFC3339, scanner.Text()); terr == nil {
			if int(time.Since(tag).Hours()) > timeout {
				os.Remove(logfile)
			}
		} else {
			os.Remove(logfile)
		}
	}
	f, err := os.OpenFile(logfile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("logger cannot open file: %v",
			fmt.Errorf("LogWriter: OpenFile: %w", err))
	}
	if stat, serr := f.Stat(); serr == nil {
		if stat.Size() == 0 {
			f.WriteString(time.Now().Format(time.RFC3339) + "\n")
			f.Sync()
		}
	}
	wrt := io.MultiWriter(os.Stderr, f)
	Log = log.New(wrt, "", log.LstdFlags)
}

// SetQuiet suppresses everything below error level unless
// SSUBMIT_LOGLEVEL overrides it.
func SetQuiet(quiet bool) {
	if quiet {
		defaultLevel = ERROR_LOGGING
	}
}

func LogLevel() int {
	if env, err := strconv.Atoi(os.Getenv(LOG_ENABLE)); err == nil {
		return env
	}
	return defaultLevel
}

func getLogLevel(level int) string {
	switch level := level; level {
	case DEBUG_LOGGING:
		return "DEBUG"
	case INFO_LOGGING:
		return "INFO"
	case WARNING_LOGGING:
		return "WARNING"
	default:
		return "ERROR"
	}
}

func DebugObj(name string, v interface{}) {
	level := DEBUG_LOGGING
	if LogLevel() <= level {
		data, _ := json.MarshalIndent(v, "", " ")
		Log.Printf("%s %s:\n%s\n", getLogLevel(level), name, data)
	}
}

func DebugPrintf(format string, a ...interface{}) {
	level := DEBUG_LOGGING
	if LogLevel() <= level {
		prefix := getLogLevel(level) + " "
		Log.Printf(prefix+format, a...)
	}
}

func InfoPrintf(format string, a ...interface{}) {
	level := INFO_LOGGING
	if LogLevel() <= level {
		prefix := getLogLevel(level) + " "
		Log.Printf(prefix+format, a...)
	}
}

func WarningPrintf(format string, a ...interface{}) {
	level := WARNING_LOGGING
	if LogLevel() <= level {
		prefix := getLogLevel(level) + " "
		Log.Printf(prefix+format, a...)
	}
}

func ErrorPrintf(format string, a ...interface{}) {
	level := ERROR_LOGGING
	if LogLevel() <= level {
		prefix := getLogLevel(level) + " "
		Log.Printf(prefix+format, a...)
	}
}
