package saver

import (
	"github.com/parquet-go/parquet-go"

	"stockbars/internal/model"
)

// parquetRow mirrors model.Bar with an epoch-millis timestamp so the row
// stays flat for the parquet encoder.
type parquetRow struct {
	Timestamp  int64   `parquet:"t"`
	Open       float64 `parquet:"o"`
	High       float64 `parquet:"h"`
	Low        float64 `parquet:"l"`
	Close      float64 `parquet:"c"`
	Volume     int64   `parquet:"v"`
	TradeCount int64   `parquet:"n,optional"`
	VWAP       float64 `parquet:"vw,optional"`
}

// ParquetSaver writes the bars as one Parquet file.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	rows := make([]parquetRow, len(bars))
	for i, b := range bars {
		rows[i] = parquetRow{
			Timestamp:  b.Timestamp.UnixMilli(),
			Open:       b.Open,
			High:       b.High,
			Low:        b.Low,
			Close:      b.Close,
			Volume:     int64(b.Volume),
			TradeCount: int64(b.TradeCount),
			VWAP:       b.VWAP,
		}
	}
	return parquet.WriteFile(path, rows)
}
