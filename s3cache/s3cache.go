/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache implements httpcache.Cache on top of an Amazon S3
 * bucket. Entries are keyed by the md5 of the request key under a
 * configurable path prefix, optionally gzipped at rest. Derived from
 * github.com/sourcegraph/s3cache, ported to aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// DefaultPathPrefix is used when New is given an empty prefix.
const DefaultPathPrefix = "webcache"

// Cache stores and retrieves cache entries in an S3 bucket.
type Cache struct {
	// Config is the AWS configuration loaded by Init.
	Config aws.Config

	// Client is the S3 client used for all operations. Init fills it
	// from Config; callers may swap in their own client afterwards.
	Client *s3.Client

	bucketName string
	pathPrefix string

	// gzip controls whether entries are compressed in Set and
	// decompressed in Get. Compressed object keys carry a ".gz" suffix.
	gzip bool

	logErrors bool

	ctx context.Context
}

// New returns a Cache backed by the named bucket, storing objects under
// pathPrefix (DefaultPathPrefix when empty). Call Init before use.
func New(ctx context.Context, bucketName, pathPrefix string, useGzip,
	logErrors bool) *Cache {

	if pathPrefix == "" {
		pathPrefix = DefaultPathPrefix
	}
	return &Cache{
		ctx:        ctx,
		bucketName: bucketName,
		pathPrefix: pathPrefix,
		gzip:       useGzip,
		logErrors:  logErrors,
	}
}

// Init loads the default AWS configuration (environment variables, then
// shared config and credentials files) and verifies the bucket is
// reachable with list permission.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}
	if _, err = c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		// NoSuchKey is just a cache miss
		if c.logErrors &&
			!(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			log.Printf("s3cache.get: failed to get object %v%v: %v",
				c.bucketName, objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := io.Reader(resp.Body)
	if c.gzip {
		gzr, err := gzip.NewReader(resp.Body)
		if err != nil {
			if c.logErrors {
				log.Printf("s3cache.get: failed to open compressed object %v%v: %v",
					c.bucketName, objKey, err)
			}
			return nil, false
		}
		defer gzr.Close()
		rdr = gzr
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		if c.logErrors {
			log.Printf("s3cache.get: failed to read object %v%v: %v",
				c.bucketName, objKey, err)
		}
		return nil, false
	}
	return data, true
}

// Set stores data in the cache under key, compressing it first when the
// cache was created with gzip enabled.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		_, err := gw.Write(data)
		if err == nil {
			err = gw.Close()
		}
		if err != nil {
			if c.logErrors {
				log.Printf("s3cache.set: failed to gzip data for %v%v: %v",
					c.bucketName, objKey, err)
			}
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		if c.logErrors {
			log.Printf("s3cache.set: put failed for %v%v: %v", c.bucketName,
				objKey, err)
		}
	}
}

func (c *Cache) Delete(key string) {
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil && c.logErrors {
		log.Printf("s3cache.delete: delete failed: %v", err)
	}
}

// objectKey maps a cache key onto its S3 object key: the md5 of the key
// under the cache's path prefix, with a ".gz" suffix for compressed
// entries.
func (c *Cache) objectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("/%v/%v", c.pathPrefix, hex.EncodeToString(h.Sum(nil)))
	if c.gzip {
		objKey += ".gz"
	}
	return objKey
}
