/* Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3cache

import (
	"context"
	"testing"
)

func TestObjectKey(t *testing.T) {
	// md5("https://example.org/roster")
	const wantHash = "6c65d4f42af5006365c2c70722545b00"

	plain := New(context.Background(), "bucket", "webcache", false, false)
	if got := plain.objectKey("https://example.org/roster"); got != "/webcache/"+wantHash {
		t.Errorf("objectKey = %v; want /webcache/%v", got, wantHash)
	}

	gzipped := New(context.Background(), "bucket", "webcache", true, false)
	if got := gzipped.objectKey("https://example.org/roster"); got != "/webcache/"+wantHash+".gz" {
		t.Errorf("gzip objectKey = %v; want /webcache/%v.gz", got, wantHash)
	}

	defaulted := New(context.Background(), "bucket", "", false, false)
	if got := defaulted.objectKey("k"); got[:len("/"+DefaultPathPrefix+"/")] != "/"+DefaultPathPrefix+"/" {
		t.Errorf("empty prefix should default to %v; got key %v",
			DefaultPathPrefix, got)
	}
}
