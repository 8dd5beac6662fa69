package offering

import "github.com/rajaput123/SevaBookingService/pkg/dbmetrics"

// Executor interfaces reused from dbmetrics
type DBExecutor = dbmetrics.DBExecutor
