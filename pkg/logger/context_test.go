package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToContextAccumulatesFields(t *testing.T) {
	lc := NewLogContext()
	ctx := WithLogContext(context.Background(), lc)

	AddToContext(ctx, String(FieldTicker, "NVDA"))
	AddToContext(ctx, Int(FieldLimit, 1), Bool(FieldSuccess, true))

	fields := lc.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, FieldTicker, fields[0].Key)
	assert.Equal(t, "NVDA", fields[0].String)
	assert.Equal(t, FieldSuccess, fields[2].Key)
}

func TestAddToContextWithoutLogContextIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		AddToContext(context.Background(), String(FieldTicker, "NVDA"))
	})
	assert.Nil(t, GetLogContext(context.Background()))

	var lc *LogContext
	lc.AddField(String("k", "v"))
	assert.Nil(t, lc.Fields())
}

func TestLogContextConcurrentWrites(t *testing.T) {
	lc := NewLogContext()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lc.AddField(Int("i", i))
		}(i)
	}
	wg.Wait()
	assert.Len(t, lc.Fields(), 50)
}

func TestCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "run-1")
	assert.Equal(t, "run-1", GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestFilingFieldHelpers(t *testing.T) {
	assert.Equal(t, FieldTicker, Ticker("NVDA").Key)
	assert.Equal(t, "0001045810", CIK("0001045810").String)
	assert.Equal(t, FieldAccession, Accession("0001045810-24-000029").Key)
	assert.Equal(t, FieldURL, URL("https://www.sec.gov").Key)
}
