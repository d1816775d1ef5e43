package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_GiaTriMacDinh(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "both", cfg.Output, "Output mặc định phải là both")
	assert.Equal(t, 100, cfg.MaxSize)
	assert.Equal(t, 7, cfg.MaxBackups)
	assert.Equal(t, "app.log", cfg.AppFile)
	assert.Equal(t, "audit.log", cfg.AuditFile)
}

func TestDefaultConfig_OverrideTuEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_OUTPUT", "stdout")
	t.Setenv("LOG_MAX_SIZE", "25")

	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.Level, "Level phải được lowercase")
	assert.Equal(t, "stdout", cfg.Output)
	assert.Equal(t, 25, cfg.MaxSize)
}

func TestParseFilter(t *testing.T) {
	t.Run("Rỗng cho phép tất cả", func(t *testing.T) {
		result := parseFilter("")
		assert.True(t, result["*"])
	})

	t.Run("Dấu sao cho phép tất cả", func(t *testing.T) {
		result := parseFilter("*")
		assert.True(t, result["*"])
	})

	t.Run("Danh sách comma-separated", func(t *testing.T) {
		result := parseFilter("Billing, customer ,AUTH")
		assert.True(t, result["billing"])
		assert.True(t, result["customer"])
		assert.True(t, result["auth"])
		assert.False(t, result["*"])
	})
}

func TestFilterHook_LocTheoModule(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterModules: "billing"})

	allowed := &logrus.Entry{
		Level: logrus.InfoLevel,
		Data:  logrus.Fields{"module": "billing"},
	}
	require.NoError(t, hook.Fire(allowed))
	_, filtered := allowed.Data["_filtered"]
	assert.False(t, filtered, "Module được cho phép không bị đánh dấu filter")

	blocked := &logrus.Entry{
		Level: logrus.InfoLevel,
		Data:  logrus.Fields{"module": "inventory"},
	}
	require.NoError(t, hook.Fire(blocked))
	assert.Equal(t, true, blocked.Data["_filtered"], "Module khác phải bị đánh dấu filter")

	// Entry không có field module thì không bị filter theo module
	noModule := &logrus.Entry{
		Level: logrus.InfoLevel,
		Data:  logrus.Fields{},
	}
	require.NoError(t, hook.Fire(noModule))
	_, filtered = noModule.Data["_filtered"]
	assert.False(t, filtered)
}

func TestFilterHook_LocTheoLevel(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterLevels: "error,warn"})

	info := &logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{}}
	require.NoError(t, hook.Fire(info))
	assert.Equal(t, true, info.Data["_filtered"])

	errEntry := &logrus.Entry{Level: logrus.ErrorLevel, Data: logrus.Fields{}}
	require.NoError(t, hook.Fire(errEntry))
	_, filtered := errEntry.Data["_filtered"]
	assert.False(t, filtered)
}

func TestAsyncHook_GhiVaBoQuaEntryBiFilter(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHookWithWriters([]io.Writer{&buf}, 10)

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	written := logrus.NewEntry(logger)
	written.Level = logrus.InfoLevel
	written.Message = "hoa-don-da-tao"
	require.NoError(t, hook.Fire(written))

	skipped := logrus.NewEntry(logger)
	skipped.Level = logrus.InfoLevel
	skipped.Message = "entry-bi-loai"
	skipped.Data["_filtered"] = true
	require.NoError(t, hook.Fire(skipped))

	require.NoError(t, hook.Close())

	// Close đã đợi goroutine xử lý xong toàn bộ buffer
	out := buf.String()
	assert.Contains(t, out, "hoa-don-da-tao")
	assert.NotContains(t, out, "entry-bi-loai")
	assert.NotContains(t, out, "_filtered", "Field đánh dấu không được ghi ra log")
}

func TestGetLogger_TraVeCungMotInstance(t *testing.T) {
	require.NoError(t, Init(&LogConfig{
		Level:   "debug",
		Format:  "text",
		Output:  "stdout",
		LogPath: t.TempDir(),
	}))

	first := GetLogger("app")
	second := GetLogger("app")
	assert.Same(t, first, second, "Cùng tên phải trả về cùng logger instance")
}
