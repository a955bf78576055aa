package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-on-wheel/internal/db/dbtest"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Record(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_FansOutToEverySink(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{err: errors.New("unavailable")}
	d := NewDispatcher(a, b)

	d.Dispatch(Event{Action: ActionUserRegistered})
	d.Dispatch(Event{Action: ActionBookingCreated})
	d.Close()

	assert.Len(t, a.events, 2)
	assert.Len(t, b.events, 2, "a failing sink does not stop delivery")
	assert.Equal(t, ActionBookingCreated, a.events[1].Action)
}

func TestDispatcher_NilIsSafe(t *testing.T) {
	var d *Dispatcher

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionUserRegistered})
		d.Close()
	})
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	d.Close()
	assert.NotPanics(t, d.Close)
}

func TestLogger_PersistsEvent(t *testing.T) {
	gdb := dbtest.Open(t)
	uid, bid := uint(3), uint(9)

	err := New(gdb).Record(context.Background(), Event{
		UserID:   &uid,
		Action:   ActionBookingCreated,
		Entity:   "booking",
		EntityID: &bid,
		Metadata: map[string]string{"service_name": "AC Repair"},
	})
	require.NoError(t, err)

	var row models.AuditLog
	require.NoError(t, gdb.First(&row).Error)
	assert.Equal(t, ActionBookingCreated, row.Action)
	assert.Equal(t, uint(9), *row.EntityID)
	assert.JSONEq(t, `{"service_name":"AC Repair"}`, row.Metadata)
}
