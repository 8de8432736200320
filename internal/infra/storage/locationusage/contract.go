package locationusage

import "github.com/m04kA/SMC-VideoLinkService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
