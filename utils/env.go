package utils

var (
	// PARQUET_NP is the parallelism handed to the parquet reader and writer.
	PARQUET_NP = GetEnvOrDefaultInt("PARQUET_NP", 4)

	CSV_DELIMITER = GetEnvOrDefault("CSV_DELIMITER", ",")

	NANOID_LENGTH = GetEnvOrDefaultInt("NANOID_LENGTH", 22)
)
