// Package receipts archives booking confirmations as JSON objects in an
// S3-compatible bucket (AWS S3, MinIO, R2).
package receipts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Receipt is the archived document for one booking.
type Receipt struct {
	BookingID     uint      `json:"booking_id"`
	UserID        uint      `json:"user_id"`
	ServiceID     uint      `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	CustomerName  string    `json:"customer_name"`
	Address       string    `json:"address"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

type Archiver struct {
	client ObjectPutter
	bucket string
}

func NewArchiver(client ObjectPutter, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// NewS3Client builds a client from static credentials. An endpoint switches
// to path-style addressing for MinIO and friends.
func NewS3Client(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.S3Region,
	}
	if cfg.S3Key != "" && cfg.S3Secret != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3Key, cfg.S3Secret, "")
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func Key(bookingID uint) string {
	return fmt.Sprintf("bookings/%d.json", bookingID)
}

// Record implements audit.Sink. Only booking_created events carrying the
// persisted booking are archived.
func (a *Archiver) Record(ctx context.Context, ev audit.Event) error {
	if ev.Action != audit.ActionBookingCreated {
		return nil
	}
	b, ok := ev.Metadata.(models.Booking)
	if !ok {
		return nil
	}

	body, err := json.Marshal(Receipt{
		BookingID:     b.ID,
		UserID:        b.UserID,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		CustomerName:  b.CustomerName,
		Address:       b.Address,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("receipts: encode booking %d: %w", b.ID, err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(Key(b.ID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("receipts: put %s: %w", Key(b.ID), err)
	}
	return nil
}

var _ audit.Sink = (*Archiver)(nil)
