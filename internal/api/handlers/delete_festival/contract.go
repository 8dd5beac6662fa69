package delete_festival

import "context"

type FestivalService interface {
	Delete(ctx context.Context, festivalID int64, devoteeID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
