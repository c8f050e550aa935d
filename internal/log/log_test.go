package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := defaultLogger
	SetOutput(&buf)
	t.Cleanup(func() { defaultLogger = prev })
	return &buf
}

func TestLog_Format(t *testing.T) {
	buf := capture(t)

	Info(CatFile, "saved", "path", "/a.txt", "lines", 3)

	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2} \[INFO\] \[file\] saved path=/a.txt lines=3\n$`)
	require.Regexp(t, re, buf.String())
}

func TestLog_OrphanKey(t *testing.T) {
	buf := capture(t)

	Debug(CatView, "move", "op")
	require.True(t, strings.HasSuffix(buf.String(), " op=<missing>\n"), buf.String())
}

func TestLog_ErrorErr(t *testing.T) {
	buf := capture(t)

	ErrorErr(CatFile, "load failed", errors.New("boom"), "path", "x")
	require.Contains(t, buf.String(), "[ERROR] [file] load failed path=x error=boom")

	buf.Reset()
	ErrorErr(CatFile, "odd", nil)
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_MinLevelAndDisable(t *testing.T) {
	buf := capture(t)

	SetMinLevel(LevelWarn)
	Info(CatUI, "hidden")
	Warn(CatUI, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [ui] shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatUI, "silent")
	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsSilent(t *testing.T) {
	prev := defaultLogger
	defaultLogger = nil
	t.Cleanup(func() { defaultLogger = prev })

	Info(CatUI, "nobody listens")
	SetEnabled(true)
	SetMinLevel(LevelDebug)
}

func TestEnabledFromEnv(t *testing.T) {
	cases := map[string]bool{"": false, "0": false, "false": false, "NO": false, "1": true, "yes": true}
	for v, want := range cases {
		t.Setenv("HEW_DEBUG", v)
		require.Equal(t, want, EnabledFromEnv(), "HEW_DEBUG=%q", v)
	}
}

func TestInit_WritesFile(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "hello")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] hello")
}
