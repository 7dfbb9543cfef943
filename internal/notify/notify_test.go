package notify

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	info := Infof("Sync completed in %.2fs.", 1.5)
	assert.Equal(t, models.Notification{
		Title:    "Git Sync",
		Body:     "Sync completed in 1.50s.",
		Severity: models.SeverityInfo,
		Duration: InfoDuration,
	}, info)

	errN := Errorf("Sync failed with code %d", -3)
	assert.Equal(t, "Git Save Error", errN.Title)
	assert.Equal(t, models.SeverityError, errN.Severity)
	assert.Equal(t, ErrorDuration, errN.Duration)
	assert.Equal(t, "Sync failed with code -3", errN.Body)
}

func TestMulti_FansOutInOrder(t *testing.T) {
	var got []string
	m := Multi{
		Func(func(n models.Notification) { got = append(got, "a:"+n.Body) }),
		nil,
		Func(func(n models.Notification) { got = append(got, "b:"+n.Body) }),
	}

	m.Notify(Info("done"))

	assert.Equal(t, []string{"a:done", "b:done"}, got)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	NewLogNotifier(l).Notify(Error("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Git Save Error", entry["title"])
	assert.Equal(t, "boom", entry["message"])
}
