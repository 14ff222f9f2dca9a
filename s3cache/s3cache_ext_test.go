/* Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3cache_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/s3cache"
)

func TestS3CacheRoundTrip(t *testing.T) {
	for _, useGzip := range []bool{false, true} {
		t.Run(fmt.Sprintf("gzip=%v", useGzip), func(t *testing.T) {
			cache := s3cache.New(context.Background(), internal.WebCacheBucket,
				"webcache-test", useGzip, true)
			if err := cache.Init(); err != nil {
				t.Skipf("Skipping test due to lack of access to %v: %v",
					internal.WebCacheBucket, err)
			}

			key := "https://example.org/tournament/entries/55"
			want := []byte("round trip payload")

			if _, ok := cache.Get(key); ok {
				cache.Delete(key)
			}
			cache.Set(key, want)
			got, ok := cache.Get(key)
			if !ok {
				t.Fatal("entry missing after Set")
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Get = %q; want %q", got, want)
			}

			cache.Delete(key)
			if _, ok := cache.Get(key); ok {
				t.Error("entry still present after Delete")
			}
		})
	}
}
