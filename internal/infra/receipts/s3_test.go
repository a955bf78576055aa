package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, f.err
}

func TestArchiver_PutsBookingReceipt(t *testing.T) {
	putter := &fakePutter{}
	a := NewArchiver(putter, "receipts")

	err := a.Record(context.Background(), audit.Event{
		Action: audit.ActionBookingCreated,
		Metadata: models.Booking{
			ID: 12, UserID: 1, ServiceID: 3, ServiceName: "AC Repair",
			CustomerName: "Asha", Address: "12 Lake Rd",
			BookingDate: "2026-11-02", BookingTime: "10:30", PaymentMethod: "upi",
		},
	})
	require.NoError(t, err)

	require.Len(t, putter.inputs, 1)
	assert.Equal(t, "receipts", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, "bookings/12.json", aws.ToString(putter.inputs[0].Key))

	var r Receipt
	require.NoError(t, json.Unmarshal(putter.bodies[0], &r))
	assert.Equal(t, "AC Repair", r.ServiceName)
	assert.Equal(t, uint(12), r.BookingID)
}

func TestArchiver_IgnoresOtherEvents(t *testing.T) {
	putter := &fakePutter{}
	a := NewArchiver(putter, "receipts")

	require.NoError(t, a.Record(context.Background(), audit.Event{Action: audit.ActionUserRegistered}))
	require.NoError(t, a.Record(context.Background(), audit.Event{Action: audit.ActionBookingCreated, Metadata: "oops"}))

	assert.Empty(t, putter.inputs)
}

func TestArchiver_WrapsPutError(t *testing.T) {
	cause := errors.New("access denied")
	a := NewArchiver(&fakePutter{err: cause}, "receipts")

	err := a.Record(context.Background(), audit.Event{
		Action:   audit.ActionBookingCreated,
		Metadata: models.Booking{ID: 5},
	})

	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "bookings/5.json")
}

func TestNewS3Client_UsesEndpoint(t *testing.T) {
	client := NewS3Client(&config.Config{
		S3Region:   "us-east-1",
		S3Endpoint: "http://localhost:9000",
		S3Key:      "minio",
		S3Secret:   "minio123",
	})

	opts := client.Options()
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.NotNil(t, opts.Credentials)
}
