package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grovetools/gridnav/tui/theme"
	"github.com/sirupsen/logrus"
)

const timestampLayout = "15:04:05.000"

var levelLabels = map[logrus.Level]string{
	logrus.PanicLevel: "PANIC",
	logrus.FatalLevel: "FATAL",
	logrus.ErrorLevel: "ERROR",
	logrus.WarnLevel:  "WARN",
	logrus.InfoLevel:  "INFO",
	logrus.DebugLevel: "DEBUG",
	logrus.TraceLevel: "TRACE",
}

// TextFormatter renders entries as a single line:
//
//	15:04:05.000 INFO  grid | moved focus col=1 row=2 (model.go:42 grid.Model.Update)
type TextFormatter struct {
	Config FormatConfig
}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format(timestampLayout))
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "%-5s ", levelLabel(entry.Level))

	if component, ok := entry.Data[componentKey]; ok && !f.Config.DisableComponent {
		b.WriteString(theme.DefaultTheme.Accent.Render(fmt.Sprint(component)))
		b.WriteString(" | ")
	}

	b.WriteString(entry.Message)
	writeFields(&b, entry.Data)

	if entry.HasCaller() {
		fmt.Fprintf(&b, " (%s:%d %s)",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function))
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelLabel(level logrus.Level) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}
	return strings.ToUpper(level.String())
}

// writeFields appends key=value pairs in key order. Values with spaces are quoted.
func writeFields(b *strings.Builder, data logrus.Fields) {
	keys := make([]string, 0, len(data))
	for key := range data {
		if key != componentKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fmt.Sprint(data[key])
		if err, ok := data[key].(error); ok {
			value = err.Error()
		}
		if strings.ContainsAny(value, " \t\n\"") {
			value = fmt.Sprintf("%q", value)
		}
		fmt.Fprintf(b, " %s=%s", key, value)
	}
}
