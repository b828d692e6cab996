package data

import (
	"context"
	"fmt"
	"iter"

	"github.com/redis/go-redis/v9"
)

// Batch sizes for pipelined hash fetches. One pipelined round trip serves
// one chunk.
const (
	defaultScanBatch = 300
	searchScanBatch  = 200
)

// fetchFields streams (key, values) rows for the given record keys, fetching
// the named hash fields in pipelined chunks of at most batchSize keys. Rows
// arrive in input order, one value slot per field, nil where a field is
// absent on the store side. The sequence is lazy: a consumer that stops
// ranging stops further round trips. A transport error is yielded once and
// ends the sequence.
func (d *Data) fetchFields(ctx context.Context, keys, fields []string, batchSize int) iter.Seq2[FieldRow, error] {
	if batchSize <= 0 {
		batchSize = defaultScanBatch
	}
	return func(yield func(FieldRow, error) bool) {
		for start := 0; start < len(keys); start += batchSize {
			chunk := keys[start:min(start+batchSize, len(keys))]
			cmds := make([]*redis.SliceCmd, len(chunk))
			_, err := d.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
				for i, key := range chunk {
					cmds[i] = pipe.HMGet(ctx, key, fields...)
				}
				return nil
			})
			if err != nil {
				yield(FieldRow{}, fmt.Errorf("failed to fetch %d-key batch: %w", len(chunk), err))
				return
			}
			for i, key := range chunk {
				if !yield(FieldRow{Key: key, Values: cmds[i].Val()}, nil) {
					return
				}
			}
		}
	}
}
