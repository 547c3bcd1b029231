package pricing

import "github.com/m04kA/TurfBookingService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов (*dbmetrics.DB или транзакция из контекста)
type DBExecutor = dbmetrics.DBExecutor
