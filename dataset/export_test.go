package dataset

// NewS3SourceWithClient wires a fake object client for tests.
func NewS3SourceWithClient(client objectGetter, bucket, key string) (*S3Source, error) {
	format, err := FormatFromPath(key)
	if err != nil {
		return nil, err
	}

	return &S3Source{client: client, bucket: bucket, key: key, format: format}, nil
}

// SQLiteDSN exposes the pragma-appending DSN builder.
var SQLiteDSN = sqliteDSN
