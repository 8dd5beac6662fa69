package booking

import "github.com/rajaput123/SevaBookingService/pkg/dbmetrics"

// Executor interfaces reused from dbmetrics so the repository works on a
// plain *sql.DB, an instrumented DB or an open transaction
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
