// Package s3 persists serialized trees as objects in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/hashicorp/golang-lru/simplelru"
)

// S3Interface is the subset of the S3 client that Persist uses.
type S3Interface interface {
	DeleteObjectWithContext(ctx aws.Context, input *awss3.DeleteObjectInput, opts ...request.Option) (*awss3.DeleteObjectOutput, error)
	GetObjectWithContext(ctx aws.Context, input *awss3.GetObjectInput, opts ...request.Option) (*awss3.GetObjectOutput, error)
	PutObjectWithContext(ctx aws.Context, input *awss3.PutObjectInput, opts ...request.Option) (*awss3.PutObjectOutput, error)
}

// Persist implements the vectree.Persist interface for storing and
// loading serialized trees as S3 objects. An LRU of recently-seen
// names avoids re-uploading snapshots the bucket already has.
type Persist struct {
	s3         S3Interface
	BucketName string
	Prefix     string
	lru        *simplelru.LRU
}

// NewPersist returns a Persist that loads and stores trees as objects
// with the given S3 client and bucket name. Object keys are the
// snapshot names with the given prefix prepended.
func NewPersist(client S3Interface, bucketName, prefix string) Persist {
	lru, err := simplelru.NewLRU(1000, nil)
	if err != nil {
		panic(err)
	}
	return Persist{client, bucketName, prefix, lru}
}

// Load loads the bytes persisted in the named object.
func (p *Persist) Load(ctx context.Context, name string) ([]byte, error) {
	input := awss3.GetObjectInput{
		Bucket: &p.BucketName,
		Key:    aws.String(p.Prefix + name),
	}
	output, err := p.s3.GetObjectWithContext(ctx, &input)
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()
	b, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, err
	}
	p.lru.Add(name, nil)
	return b, nil
}

// Store persists the given bytes in an object of the given name, if it
// wasn't stored or loaded already.
func (p Persist) Store(ctx context.Context, name string, b []byte) error {
	if _, present := p.lru.Get(name); present {
		return nil
	}
	input := awss3.PutObjectInput{
		Bucket: &p.BucketName,
		Key:    aws.String(p.Prefix + name),
		Body:   bytes.NewReader(b),
	}
	_, err := p.s3.PutObjectWithContext(ctx, &input)
	if err != nil {
		return err
	}
	p.lru.Add(name, nil)
	return nil
}
