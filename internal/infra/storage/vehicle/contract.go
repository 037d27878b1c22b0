package vehicle

import "github.com/m04kA/RentalBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
