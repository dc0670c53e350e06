package logger

import (
	"time"

	"go.uber.org/zap"
)

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Duration(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}

func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// Filing fields shared by the fetcher's log lines and its run context.

func Ticker(ticker string) zap.Field {
	return zap.String(FieldTicker, ticker)
}

func CIK(cik string) zap.Field {
	return zap.String(FieldCIK, cik)
}

func Accession(accession string) zap.Field {
	return zap.String(FieldAccession, accession)
}

func URL(url string) zap.Field {
	return zap.String(FieldURL, url)
}
