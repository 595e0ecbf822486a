package notification

import "github.com/m04kA/SMC-BarberService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
