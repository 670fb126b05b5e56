package sql

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_source_file.sql
var RegisterSourceFile string

//go:embed queries/lookup_source_file.sql
var LookupSourceFile string

//go:embed queries/update_source_status.sql
var UpdateSourceStatus string

//go:embed queries/transform_occurrences.sql
var TransformOccurrences string

//go:embed queries/delete_staging_batch.sql
var DeleteStagingBatch string

//go:embed queries/analyze_tables.sql
var AnalyzeTables string
