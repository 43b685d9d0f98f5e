package normalizer

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWarningAggregator(t *testing.T) {
	w := NewWarningAggregator()
	assert.True(t, w.Empty())

	for _, id := range []string{"A", "B", "C", "D"} {
		w.Add(WarningNoPrice, id)
	}
	w.Add(WarningDuplicateItinerary, "A")

	assert.False(t, w.Empty())
	assert.Equal(t, 4, w.Count(WarningNoPrice))
	assert.Equal(t, []string{"A", "B", "C"}, w.Examples(WarningNoPrice))
	assert.Equal(t, 0, w.Count(WarningNoSegments))
	assert.Nil(t, w.Examples(WarningNoSegments))
	assert.Equal(t, []string{WarningDuplicateItinerary, WarningNoPrice}, w.Types())
}

func TestWarningAggregatorNil(t *testing.T) {
	var w *WarningAggregator
	w.Add(WarningNoPrice, "A")
	assert.True(t, w.Empty())
	assert.Equal(t, 0, w.Count(WarningNoPrice))
	assert.Nil(t, w.Types())
}

func TestWarningAggregatorLogAll(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	w := NewWarningAggregator()
	w.Add(WarningNoPrice, "IT2")
	w.Add(WarningNoPrice, "IT7")
	w.LogAll(logger, "outbound")

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "direction=outbound")
	assert.Contains(t, out, "warning=no_price")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "Examples: IT2, IT7")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}
