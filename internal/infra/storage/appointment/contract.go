package appointment

import (
	"github.com/salonix/booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics,
// чтобы репозиторий одинаково работал с *sql.DB, *dbmetrics.DB и транзакциями
type DBExecutor = dbmetrics.DBExecutor
